// migrate aplica o revierte las migraciones embebidas y, opcionalmente, siembra el
// catálogo de categorías desde un archivo de texto (un nombre por línea).
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
//	go run ./cmd/migrate seed categorias.txt
//
// El archivo de categorías puede venir en UTF-8 o ISO-8859-1 (exportes de hojas de cálculo).
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Directorio-api/pkg/config"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: migrate up | down | seed <archivo>")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	switch os.Args[1] {
	case "up":
		n, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migrar")
		}
		log.Info().Int("applied", n).Msg("migraciones aplicadas")
	case "down":
		if err := postgres.RollbackLast(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("revertir")
		}
		log.Info().Msg("última migración revertida")
	case "seed":
		if len(os.Args) < 3 {
			log.Fatal().Msg("seed requiere la ruta del archivo")
		}
		names, err := readNames(os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Msg("leer archivo")
		}
		repo := postgres.NewCategoryRepository(pool)
		created := 0
		for _, name := range names {
			c := &entity.Category{Name: name, Slug: entity.Slugify(name)}
			if err := repo.Create(ctx, c); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					continue
				}
				log.Fatal().Err(err).Str("category", name).Msg("crear categoría")
			}
			created++
		}
		log.Info().Int("created", created).Int("read", len(names)).Msg("categorías sembradas")
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido %q\n", os.Args[1])
		os.Exit(2)
	}
}

// readNames devuelve las líneas no vacías; si el archivo no es UTF-8 válido lo lee como Latin-1.
func readNames(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	seen := make(map[string]bool)
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" || strings.HasPrefix(name, "#") || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, sc.Err()
}

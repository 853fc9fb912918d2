package usecase

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Users      repository.UserRepository
	Businesses repository.BusinessRepository
	Menu       repository.MenuRepository
	Wifi       repository.WifiRepository
}

// TxRunner ejecuta escrituras en una transacción que conoce al principal (sesión),
// para que las políticas de fila de la base rechacen lo mismo que CanManageBusiness.
type TxRunner interface {
	RunAs(ctx context.Context, sess *entity.Session, fn func(r Repos) error) error
}

// DirectRunner TxRunner sin transacción: usa los repositorios tal cual (tests, backends en memoria).
type DirectRunner struct {
	Repos Repos
}

func (d DirectRunner) RunAs(_ context.Context, _ *entity.Session, fn func(r Repos) error) error {
	return fn(d.Repos)
}

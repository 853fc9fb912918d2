package entity

import (
	"strings"
	"time"
)

// Tipos de seguridad aceptados para redes WiFi.
const (
	WifiWPA    = "WPA"
	WifiWEP    = "WEP"
	WifiNoPass = "nopass"
)

// WifiNetwork credenciales WiFi que el negocio publica para sus clientes.
type WifiNetwork struct {
	ID         int64
	BusinessID int64
	SSID       string
	Password   string
	Security   string
	Hidden     bool
	Position   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var wifiEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)

// QRPayload devuelve el texto estándar para códigos QR de WiFi:
// WIFI:T:<seguridad>;S:<ssid>;P:<clave>;H:<oculta>;;
func (w *WifiNetwork) QRPayload() string {
	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(w.Security)
	b.WriteString(";S:")
	b.WriteString(wifiEscaper.Replace(w.SSID))
	b.WriteString(";")
	if w.Security != WifiNoPass {
		b.WriteString("P:")
		b.WriteString(wifiEscaper.Replace(w.Password))
		b.WriteString(";")
	}
	if w.Hidden {
		b.WriteString("H:true;")
	}
	b.WriteString(";")
	return b.String()
}

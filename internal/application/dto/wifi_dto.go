package dto

// WifiRequest crear o reemplazar una red WiFi. Security: WPA | WEP | nopass.
type WifiRequest struct {
	SSID     string `json:"ssid" validate:"required,max=32"`
	Password string `json:"password"`
	Security string `json:"security" validate:"omitempty,oneof=WPA WEP nopass"`
	Hidden   bool   `json:"hidden"`
	Position int    `json:"position"`
}

// WifiResponse red WiFi con el texto listo para el código QR.
type WifiResponse struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"business_id"`
	SSID       string `json:"ssid"`
	Password   string `json:"password"`
	Security   string `json:"security"`
	Hidden     bool   `json:"hidden"`
	Position   int    `json:"position"`
	QRPayload  string `json:"qr_payload"`
}

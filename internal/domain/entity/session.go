package entity

// Session es la identidad del usuario conectado tal como se guarda en el slot de sesión.
// El formato JSON es el contrato persistido; no renombrar los tags.
type Session struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	BusinessID *int64 `json:"business_id"`
	IsActive   bool   `json:"is_active"`
}

// NewSession copia los campos de la fila del usuario a una sesión.
func NewSession(u *User) *Session {
	s := &Session{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.EffectiveRole(),
		IsActive: u.IsActive,
	}
	if u.BusinessID != nil {
		id := *u.BusinessID
		s.BusinessID = &id
	}
	return s
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// WifiUseCase redes WiFi que el negocio comparte con sus clientes (con payload para QR).
type WifiUseCase struct {
	repo       repository.WifiRepository
	businesses repository.BusinessRepository
	tx         TxRunner
}

func NewWifiUseCase(repo repository.WifiRepository, businesses repository.BusinessRepository, tx TxRunner) *WifiUseCase {
	return &WifiUseCase{repo: repo, businesses: businesses, tx: tx}
}

// List redes de un negocio visible.
func (uc *WifiUseCase) List(ctx context.Context, sess *entity.Session, businessID int64) ([]dto.WifiResponse, error) {
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil || (!b.IsActive && !access.CanManageBusiness(businessID, sess)) {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WifiResponse, 0, len(list))
	for _, w := range list {
		out = append(out, toWifiResponse(w))
	}
	return out, nil
}

func (uc *WifiUseCase) Create(ctx context.Context, sess *entity.Session, businessID int64, in dto.WifiRequest) (*dto.WifiResponse, error) {
	if err := access.RequireManage(businessID, sess); err != nil {
		return nil, err
	}
	now := time.Now()
	w := &entity.WifiNetwork{BusinessID: businessID, CreatedAt: now, UpdatedAt: now}
	if err := applyWifi(w, in); err != nil {
		return nil, err
	}
	if err := uc.tx.RunAs(ctx, sess, func(r Repos) error { return r.Wifi.Create(ctx, w) }); err != nil {
		return nil, err
	}
	res := toWifiResponse(w)
	return &res, nil
}

func (uc *WifiUseCase) Update(ctx context.Context, sess *entity.Session, businessID, id int64, in dto.WifiRequest) (*dto.WifiResponse, error) {
	if err := access.RequireManage(businessID, sess); err != nil {
		return nil, err
	}
	w, err := uc.owned(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if err := applyWifi(w, in); err != nil {
		return nil, err
	}
	w.UpdatedAt = time.Now()
	if err := uc.tx.RunAs(ctx, sess, func(r Repos) error { return r.Wifi.Update(ctx, w) }); err != nil {
		return nil, err
	}
	res := toWifiResponse(w)
	return &res, nil
}

func (uc *WifiUseCase) Delete(ctx context.Context, sess *entity.Session, businessID, id int64) error {
	if err := access.RequireManage(businessID, sess); err != nil {
		return err
	}
	if _, err := uc.owned(ctx, businessID, id); err != nil {
		return err
	}
	return uc.tx.RunAs(ctx, sess, func(r Repos) error { return r.Wifi.Delete(ctx, id) })
}

func (uc *WifiUseCase) owned(ctx context.Context, businessID, id int64) (*entity.WifiNetwork, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil || w.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return w, nil
}

// applyWifi valida y copia la entrada. Seguridad vacía = WPA; nopass descarta la clave.
func applyWifi(w *entity.WifiNetwork, in dto.WifiRequest) error {
	ssid := strings.TrimSpace(in.SSID)
	if ssid == "" || len(ssid) > 32 {
		return fmt.Errorf("%w: ssid obligatorio (máx. 32 bytes)", domain.ErrInvalidInput)
	}
	sec := in.Security
	if sec == "" {
		sec = entity.WifiWPA
	}
	switch sec {
	case entity.WifiWPA, entity.WifiWEP:
		if in.Password == "" {
			return fmt.Errorf("%w: la red %s requiere contraseña", domain.ErrInvalidInput, sec)
		}
		w.Password = in.Password
	case entity.WifiNoPass:
		w.Password = ""
	default:
		return fmt.Errorf("%w: seguridad %q no soportada", domain.ErrInvalidInput, sec)
	}
	w.SSID = ssid
	w.Security = sec
	w.Hidden = in.Hidden
	w.Position = in.Position
	return nil
}

func toWifiResponse(w *entity.WifiNetwork) dto.WifiResponse {
	return dto.WifiResponse{
		ID:         w.ID,
		BusinessID: w.BusinessID,
		SSID:       w.SSID,
		Password:   w.Password,
		Security:   w.Security,
		Hidden:     w.Hidden,
		Position:   w.Position,
		QRPayload:  w.QRPayload(),
	}
}

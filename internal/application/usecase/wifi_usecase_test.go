package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
)

func TestWifi_CRUD(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	w, err := f.wifiUC.Create(ctx, owner1, 42, dto.WifiRequest{SSID: "Cafe;Wifi", Password: "a:b"})
	require.NoError(t, err)
	assert.Equal(t, "WPA", w.Security)
	assert.Equal(t, `WIFI:T:WPA;S:Cafe\;Wifi;P:a\:b;;`, w.QRPayload)

	w, err = f.wifiUC.Update(ctx, owner1, 42, w.ID, dto.WifiRequest{SSID: "Libre", Password: "ignorada", Security: "nopass", Hidden: true})
	require.NoError(t, err)
	assert.Empty(t, w.Password)
	assert.Equal(t, `WIFI:T:nopass;S:Libre;H:true;;`, w.QRPayload)

	list, err := f.wifiUC.List(ctx, nil, 42)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, f.wifiUC.Delete(ctx, owner1, 42, w.ID))
	list, err = f.wifiUC.List(ctx, nil, 42)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWifi_Validacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for _, in := range []dto.WifiRequest{
		{SSID: ""},
		{SSID: "123456789012345678901234567890123", Security: "nopass"},
		{SSID: "x", Security: "WPA"},
		{SSID: "x", Security: "WPA3", Password: "p"},
	} {
		_, err := f.wifiUC.Create(ctx, owner1, 42, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestWifi_Autorizacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w, err := f.wifiUC.Create(ctx, owner1, 42, dto.WifiRequest{SSID: "Cafe", Password: "secreta1"})
	require.NoError(t, err)

	_, err = f.wifiUC.Create(ctx, owner2, 42, dto.WifiRequest{SSID: "Intruso", Security: "nopass"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.wifiUC.Update(ctx, owner2, 99, w.ID, dto.WifiRequest{SSID: "x", Security: "nopass"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.wifiUC.Delete(ctx, ana, 42, w.ID), domain.ErrForbidden)
	require.NoError(t, f.wifiUC.Delete(ctx, admin, 42, w.ID))

	_, err = f.wifiUC.List(ctx, nil, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

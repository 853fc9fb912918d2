package usecase_test

import (
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository/repofake"
)

type fixture struct {
	users      *repofake.Users
	businesses *repofake.Businesses
	categories *repofake.Categories
	menu       *repofake.Menu
	wifi       *repofake.Wifi

	business *usecase.BusinessUseCase
	category *usecase.CategoryUseCase
	menuUC   *usecase.MenuUseCase
	wifiUC   *usecase.WifiUseCase
	userUC   *usecase.UserUseCase
}

func newFixture() *fixture {
	f := &fixture{
		users: repofake.NewUsers(
			&entity.User{ID: 1, Username: "owner1", Email: "o1@dir.co", Role: entity.RoleOwner, BusinessID: ptr(int64(42)), IsActive: true},
			&entity.User{ID: 2, Username: "ana", Email: "ana@dir.co", Role: entity.RoleUser, IsActive: true},
			&entity.User{ID: 3, Username: "owner2", Email: "o2@dir.co", Role: entity.RoleOwner, BusinessID: ptr(int64(99)), IsActive: true},
		),
		businesses: repofake.NewBusinesses(
			&entity.Business{ID: 42, Username: "cafe-central", Name: "Café Central", City: "Medellín", IsActive: true},
			&entity.Business{ID: 99, Username: "panaderia", Name: "Panadería", City: "Bogotá", IsActive: true},
			&entity.Business{ID: 7, Username: "cerrado", Name: "Cerrado", City: "Cali", IsActive: false},
		),
		categories: repofake.NewCategories(&entity.Category{ID: 1, Name: "Cafés", Slug: "cafes"}),
		menu:       repofake.NewMenu(),
		wifi:       repofake.NewWifi(),
	}
	tx := usecase.DirectRunner{Repos: usecase.Repos{
		Users: f.users, Businesses: f.businesses, Menu: f.menu, Wifi: f.wifi,
	}}
	f.business = usecase.NewBusinessUseCase(f.businesses, f.categories, tx)
	f.category = usecase.NewCategoryUseCase(f.categories)
	f.menuUC = usecase.NewMenuUseCase(f.menu, f.businesses, tx)
	f.wifiUC = usecase.NewWifiUseCase(f.wifi, f.businesses, tx)
	f.userUC = usecase.NewUserUseCase(f.users)
	return f
}

func ptr[T any](v T) *T { return &v }

var (
	admin  = &entity.Session{Username: "root", Role: entity.RoleAdmin, IsActive: true}
	owner1 = &entity.Session{ID: 1, Username: "owner1", Role: entity.RoleOwner, BusinessID: ptr(int64(42)), IsActive: true}
	owner2 = &entity.Session{ID: 3, Username: "owner2", Role: entity.RoleOwner, BusinessID: ptr(int64(99)), IsActive: true}
	ana    = &entity.Session{ID: 2, Username: "ana", Role: entity.RoleUser, IsActive: true}
)

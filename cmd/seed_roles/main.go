// seed_roles asigna los roles iniciales de la cadena (fabricante, distribuidor,
// minorista) a las identidades indicadas. Pensado para bootstrap de entornos
// de desarrollo y demo.
//
// Uso: go run ./cmd/seed_roles -manufacturer 0x... -distributor 0x... -retailer 0x...
// La conexión a la BD sale de la configuración (DATABASE_URL o DB_*).
package main

import (
	"context"
	"flag"
	"time"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Trazabilidad-api/pkg/config"
	"github.com/jhoicas/Trazabilidad-api/pkg/logger"
)

func main() {
	manufacturer := flag.String("manufacturer", "", "identidad con rol fabricante")
	distributor := flag.String("distributor", "", "identidad con rol distribuidor")
	retailer := flag.String("retailer", "", "identidad con rol minorista")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de BD")
	}

	roleRepo := postgres.NewRoleRepository(pool)
	seed := []struct {
		address string
		role    entity.Role
	}{
		{*manufacturer, entity.RoleManufacturer},
		{*distributor, entity.RoleDistributor},
		{*retailer, entity.RoleRetailer},
	}

	now := time.Now().Unix()
	for _, s := range seed {
		if s.address == "" {
			continue
		}
		err := roleRepo.Upsert(&entity.RoleAssignment{Address: s.address, Role: s.role, UpdatedAt: now})
		if err != nil {
			log.Fatal().Err(err).Str("address", s.address).Msg("asignar rol")
		}
		log.Info().Str("address", s.address).Str("role", s.role.String()).Msg("rol asignado")
	}
}

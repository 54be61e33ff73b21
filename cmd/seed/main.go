package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/nominasur/turnos/backend/internal/config"
	"github.com/nominasur/turnos/backend/internal/repository"
	"github.com/nominasur/turnos/backend/internal/seed"
	"github.com/nominasur/turnos/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operación a ejecutar (1: empleados aleatorios, 2: plantillas aleatorias, 3: calendario festivo, 4: catálogo de horas extra)")
	flag.IntVar(&n, "n", 5, "cantidad de registros a insertar")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("no se pudo crear el pool de conexiones", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open no conecta, hay que hacer ping explícito.
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("no se pudo conectar a la base de datos", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no se indicó la operación")
	case 1:
		if n <= 0 {
			slog.Error("indique una cantidad válida de empleados")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				employee, err := utils.GenerateRandomEmployee(cfg.Seed.Employee.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("no se pudo generar el empleado aleatorio", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateEmployee(employee); err != nil {
					slog.Error("no se pudo insertar el empleado", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("empleados insertados", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("indique una cantidad válida de plantillas")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				st := utils.GenerateRandomShiftTemplate()
				if err := repo.CreateShiftTemplate(st); err != nil {
					slog.Error("no se pudo insertar la plantilla", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("plantillas insertadas", slog.Int("count", n-cnt))
		}
	case 3:
		seed.SeedHolidayCalendar(repo)
	case 4:
		seed.SeedOvertimeCatalog(repo)
	default:
		slog.Error("la operación indicada no es válida")
	}
}

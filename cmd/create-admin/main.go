package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	usersService "github.com/m04kA/SMC-SalonService/internal/service/users"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/hasher"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

// adminEnv данные первого администратора
type adminEnv struct {
	Name     string `envconfig:"ADMIN_NOMBRE" required:"true"`
	Surname  string `envconfig:"ADMIN_APELLIDO" required:"true"`
	Email    string `envconfig:"ADMIN_EMAIL" required:"true"`
	Password string `envconfig:"ADMIN_PASSWORD" required:"true"`
}

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// .env подгружается вместе с конфигурацией
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var env adminEnv
	if err := envconfig.Process("", &env); err != nil {
		fmt.Printf("Failed to read admin variables: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	svc := usersService.NewService(
		userRepo.NewRepository(dbmetrics.Wrap(db, nil)),
		hasher.NewBcrypt(bcrypt.DefaultCost),
		log,
	)

	created, err := svc.EnsureAdmin(ctx, &usersService.CreateRequest{
		Name:     env.Name,
		Surname:  env.Surname,
		Email:    env.Email,
		Password: env.Password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		log.Error("Failed to create admin: %v", err)
		fmt.Printf("No se pudo crear el administrador: %v\n", err)
		os.Exit(1)
	}

	if !created {
		fmt.Println("Ya existe un administrador activo, no se realizaron cambios.")
		return
	}

	fmt.Printf("Administrador %s %s (%s) creado correctamente.\n", env.Name, env.Surname, env.Email)
}

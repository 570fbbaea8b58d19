package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"bank-backoffice.backend/internal/config"
	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/infrastructure/datasources/postgres"
	"bank-backoffice.backend/internal/infrastructure/repositories"
	"bank-backoffice.backend/internal/usecases"
	"bank-backoffice.backend/pkg/crypto"
)

// userCreator is the slice of the user usecase this command needs
type userCreator interface {
	Create(ctx context.Context, input *entities.CreateUserInput) (*entities.UserResponse, error)
}

type adminUserDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (userCreator, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultAdminUserDeps() adminUserDeps {
	return adminUserDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (userCreator, io.Closer, error) {
			sqlDB, err := postgres.NewConnection(cfg.Database)
			if err != nil {
				return nil, nil, err
			}
			db, err := postgres.Open(sqlDB)
			if err != nil {
				_ = sqlDB.Close()
				return nil, nil, err
			}
			if cfg.Database.AutoMigrate {
				if err := postgres.Migrate(db); err != nil {
					_ = sqlDB.Close()
					return nil, nil, err
				}
			}

			crypto.SetCost(cfg.Security.BcryptCost)
			users := usecases.NewUserUsecase(repositories.NewUserRepository(db), repositories.NewAddressRepository(db))
			return users, sqlDB, nil
		},
		out: os.Stdout,
	}
}

func runAdminUser(args []string, deps adminUserDeps) error {
	def := defaultAdminUserDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.prepare == nil {
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("admin-user", flag.ContinueOnError)
	name := fs.String("name", "Administrator", "display name")
	email := fs.String("email", "", "login email (required)")
	password := fs.String("password", "", "initial password (required)")
	roles := fs.String("roles", string(entities.UserRoleAdmin), "role combination")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("--email and --password are required")
	}
	if !entities.HasAnyRole(*roles, entities.UserRoleAdmin) {
		return fmt.Errorf("--roles must include %s", entities.UserRoleAdmin)
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	users, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	user, err := users.Create(context.Background(), &entities.CreateUserInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Roles:    *roles,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	fmt.Fprintln(deps.out, "Admin user created")
	fmt.Fprintf(deps.out, "USER_ID=%s\n", user.ID)
	fmt.Fprintf(deps.out, "EMAIL=%s\n", user.Email)
	fmt.Fprintf(deps.out, "ROLES=%s\n", user.Roles)
	return nil
}

func main() {
	if err := runAdminUser(os.Args[1:], adminUserDeps{}); err != nil {
		log.Fatal(err)
	}
}

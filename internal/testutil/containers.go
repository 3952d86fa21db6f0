// This file is a helper for running tests with testcontainers.
// It is used by cmd/testcontainers as a standalone executable and by the dialect tests in internal/database.
// Expects TEST_* environment variables, optionally loaded from a .env file.
//

package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/localnerve/swipefile/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	containerDatabase = "swipefile"
	containerUser     = "swipefile"
	containerPassword = "swipefile-test"
	dbAlias           = "database"
	authzAlias        = "authorizer"
)

// Containers is a database, and optionally an Authorizer, running on a private network
type Containers struct {
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	AuthorizerContainer testcontainers.Container

	// Config points at the mapped ports on the host
	Config *config.Config
}

// Terminate stops every container and removes the network; t may be nil
func (tc *Containers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.AuthorizerContainer != nil {
		if err := tc.AuthorizerContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Authorizer: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// dialect describes how to run one database image
type dialect struct {
	port string
	env  map[string]string
	wait func(nat.Port) wait.Strategy
}

var dialects = map[string]dialect{
	"postgres": {
		port: "5432",
		env: map[string]string{
			"POSTGRES_DB":       containerDatabase,
			"POSTGRES_USER":     containerUser,
			"POSTGRES_PASSWORD": containerPassword,
		},
		wait: func(p nat.Port) wait.Strategy {
			return wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort(p),
			).WithDeadline(90 * time.Second)
		},
	},
	"mariadb": {
		port: "3306",
		env: map[string]string{
			"MARIADB_ROOT_PASSWORD": containerPassword,
			"MARIADB_DATABASE":      containerDatabase,
			"MARIADB_USER":          containerUser,
			"MARIADB_PASSWORD":      containerPassword,
		},
		wait: func(p nat.Port) wait.Strategy {
			return wait.ForListeningPort(p).WithStartupTimeout(90 * time.Second)
		},
	},
}

// StartDatabase runs image as dbType (postgres or mariadb) and returns a Config
// that connects to it from the host. With authzImage set an Authorizer joins the
// network, backed by the same database server.
func StartDatabase(ctx context.Context, t *testing.T, dbType, image, authzImage string) (*Containers, error) {
	d, ok := dialects[dbType]
	if !ok {
		return nil, fmt.Errorf("unsupported container dialect %q", dbType)
	}
	tc := &Containers{}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create network: %w", err)
	}
	tc.Network = nw

	port, err := nat.NewPort("tcp", d.port)
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("database port: %w", err)
	}
	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:          image,
			ExposedPorts:   []string{string(port)},
			Env:            d.env,
			WaitingFor:     d.wait(port),
			Networks:       []string{nw.Name},
			NetworkAliases: map[string][]string{nw.Name: {dbAlias}},
		},
		Started: true,
	})
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("start database: %w", err)
	}
	tc.DBContainer = dbContainer

	host, err := dbContainer.Host(ctx)
	if err != nil {
		tc.Terminate(t)
		return nil, err
	}
	mapped, err := dbContainer.MappedPort(ctx, port)
	if err != nil {
		tc.Terminate(t)
		return nil, err
	}
	tc.Config = &config.Config{
		LogLevel:          "silent",
		DBType:            dbType,
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        containerDatabase,
		DBUser:            containerUser,
		DBPassword:        containerPassword,
		DBConnectionLimit: 4,
	}
	logMessage(t, "DB_TYPE=%s DB_HOST=%s DB_PORT=%s DB_DATABASE=%s", dbType, host, mapped.Port(), containerDatabase)

	if authzImage != "" {
		if err := tc.startAuthorizer(ctx, t, dbType, d.port, authzImage); err != nil {
			tc.Terminate(t)
			return nil, err
		}
	}
	return tc, nil
}

func (tc *Containers) startAuthorizer(ctx context.Context, t *testing.T, dbType, dbPort, image string) error {
	port, err := nat.NewPort("tcp", "8080")
	if err != nil {
		return fmt.Errorf("authorizer port: %w", err)
	}

	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", containerUser, containerPassword, dbAlias, dbPort, containerDatabase)
	if dbType == "mariadb" {
		url = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", containerUser, containerPassword, dbAlias, dbPort, containerDatabase)
	}
	clientID := os.Getenv("AUTHZ_CLIENT_ID")
	if clientID == "" {
		clientID = "swipefile-test"
	}

	authz, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     clientID,
				"PORT":          port.Port(),
				"DATABASE_TYPE": dbType,
				"DATABASE_NAME": containerDatabase,
				"DATABASE_URL":  url,
				"ADMIN_SECRET":  containerPassword,
				"ROLES":         "admin,user",
				"DEFAULT_ROLES": "user",
			},
			WaitingFor:     wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(60 * time.Second),
			Networks:       []string{tc.Network.Name},
			NetworkAliases: map[string][]string{tc.Network.Name: {authzAlias}},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("start authorizer: %w", err)
	}
	tc.AuthorizerContainer = authz

	host, _ := authz.Host(ctx)
	mapped, err := authz.MappedPort(ctx, port)
	if err != nil {
		return err
	}
	tc.Config.AuthzURL = fmt.Sprintf("http://%s:%s", host, mapped.Port())
	tc.Config.AuthzClientID = clientID
	logMessage(t, "AUTHZ_URL=%s AUTHZ_CLIENT_ID=%s", tc.Config.AuthzURL, clientID)
	return nil
}

func logMessage(t *testing.T, format string, args ...interface{}) {
	if t != nil {
		t.Logf(format, args...)
		return
	}
	fmt.Printf(format+"\n", args...)
}

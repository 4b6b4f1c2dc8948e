// Package cli implements the commands of the field client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iudanet/solarsync/internal/client/auth"
	"github.com/iudanet/solarsync/internal/client/crm"
	"github.com/iudanet/solarsync/internal/client/iocli"
	"github.com/iudanet/solarsync/internal/client/storage"
	"github.com/iudanet/solarsync/internal/client/sync"
	"github.com/iudanet/solarsync/internal/models"
	pkgapi "github.com/iudanet/solarsync/pkg/api"
)

var (
	// ErrNotAuthenticated no token is stored and none is given in the environment
	ErrNotAuthenticated = errors.New("not authenticated. Please run 'solarsync login' first")

	// ErrUnknownCommand the command name is not recognized
	ErrUnknownCommand = errors.New("unknown command")
)

//go:generate moq -out crm_mock.go . CRM

// CRM is the entity facade used by the commands
type CRM interface {
	List(ctx context.Context, entity models.EntityType, force bool) (*crm.Listing, error)
	Create(ctx context.Context, entity models.EntityType, fields pkgapi.Fields) (models.Record, error)
	Update(ctx context.Context, entity models.EntityType, id string, fields pkgapi.Fields) (models.Record, error)
	Delete(ctx context.Context, entity models.EntityType, id string) error
	LinkInstallation(ctx context.Context, clientID, installationID string) error
	UnlinkInstallation(ctx context.Context, clientID, installationID string) error
	Statuses(ctx context.Context) map[models.EntityType]*models.SyncStatus
	InvalidateAll(ctx context.Context) error
}

var _ CRM = (*crm.Service)(nil)

//go:generate moq -out outbox_mock.go . Outbox

// Outbox отдает запросы, ожидающие повтора
type Outbox interface {
	List(ctx context.Context) ([]*models.QueuedRequest, error)
}

//go:generate moq -out caches_mock.go . CacheClearer

// CacheClearer сбрасывает кеши ответов перехватчика
type CacheClearer interface {
	ClearCaches(ctx context.Context) error
}

// Session are the remote base credentials resolved for one run
type Session struct {
	BaseURL string
	BaseID  string
	Token   string
}

// Stack is the part of the client that needs a session
type Stack struct {
	CRM    CRM
	Sync   sync.Service
	Outbox Outbox
	Caches CacheClearer
	Online func() bool
}

// Connector builds the Stack once the session is known
type Connector func(ctx context.Context, session Session) (*Stack, error)

// Options are values from the environment and flags. Empty values fall back
// to the stored login or to an interactive prompt.
type Options struct {
	APIURL     string
	BaseID     string
	Token      string
	Passphrase string
}

// Cli dispatches commands
type Cli struct {
	io          iocli.IO
	authService auth.Service
	connect     Connector
	stack       *Stack
	opts        Options
}

// New создает CLI. connect вызывается не более одного раза.
func New(io iocli.IO, authService auth.Service, connect Connector, opts Options) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		connect:     connect,
		opts:        opts,
	}
}

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx, args)
	case "create":
		return c.runCreate(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "link":
		return c.runLink(ctx, args, true)
	case "unlink":
		return c.runLink(ctx, args, false)
	case "sync":
		return c.runSync(ctx)
	case "outbox":
		return c.runOutbox(ctx)
	case "clear-cache":
		return c.runClearCache(ctx)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// open builds the stack on first use
func (c *Cli) open(ctx context.Context) (*Stack, error) {
	if c.stack != nil {
		return c.stack, nil
	}

	session, err := c.session(ctx)
	if err != nil {
		return nil, err
	}

	stack, err := c.connect(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	c.stack = stack
	return stack, nil
}

// session resolves the credentials with priority:
// 1. SOLARSYNC_API_TOKEN and flags
// 2. Stored login, decrypted with SOLARSYNC_PASSPHRASE
// 3. Stored login, passphrase from an interactive prompt
func (c *Cli) session(ctx context.Context) (Session, error) {
	s := Session{BaseURL: c.opts.APIURL, BaseID: c.opts.BaseID, Token: c.opts.Token}
	if s.BaseURL != "" && s.BaseID != "" && s.Token != "" {
		return s, nil
	}

	authData, err := c.authService.GetAuthEncryptData(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return Session{}, ErrNotAuthenticated
		}
		return Session{}, fmt.Errorf("failed to get auth data: %w", err)
	}

	if s.BaseURL == "" {
		s.BaseURL = authData.BaseURL
	}
	if s.BaseID == "" {
		s.BaseID = authData.BaseID
	}
	if s.Token != "" {
		return s, nil
	}

	passphrase := c.opts.Passphrase
	if passphrase == "" {
		passphrase, err = c.io.ReadPassword("Passphrase: ")
		if err != nil {
			return Session{}, fmt.Errorf("failed to read passphrase: %w", err)
		}
	}

	token, err := c.authService.Token(ctx, passphrase)
	if err != nil {
		return Session{}, fmt.Errorf("failed to decrypt API token: %w", err)
	}
	s.Token = token

	return s, nil
}

// PrintUsage печатает справку
func PrintUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `SolarSync Field Client

Usage:
  solarsync [OPTIONS] COMMAND [ARGS]

Options:
  -version                 Show version information
  -api URL                 Remote API URL (default from login)
  -base ID                 Base ID (default from login)
  -db PATH                 Path to local database
  -response-cache PATH     Path to the interceptor response cache
  -redis ADDR              Share the response cache through Redis
  -probe HOST:PORT         Address dialed to detect connectivity
  -timeout DURATION        Timeout of one remote request (default 10s)
  -log-level LEVEL         debug, info, warn, error

Token priority (highest to lowest):
  1. SOLARSYNC_API_TOKEN environment variable
  2. Stored token, passphrase from SOLARSYNC_PASSPHRASE
  3. Stored token, interactive passphrase prompt

Commands:
  login                                    Save the API token encrypted with a passphrase
  logout                                   Remove the stored token
  status                                   Show login, connectivity and cache status
  list <entity> [-force]                   List products, clients, installations or sessions
  create <entity> Field=Value...           Create a record
  update <entity> <id> Field=Value...      Update fields of a record
  delete <entity> <id>                     Delete a record
  link <clientID> <installationID>         Link a client and an installation
  unlink <clientID> <installationID>       Remove the link
  sync                                     Replay queued writes and refresh every cache
  outbox                                   Show writes queued while offline
  clear-cache                              Drop all local caches
  version                                  Show version information

Field values:
  Name=Ann                 string value
  Price:=1200              JSON value (numbers, booleans, lists)
  Installations:='["recXXXXXXXXXXXXXX"]'

Examples:
  solarsync login
  solarsync list clients
  solarsync list products -force
  solarsync create clients Name="Ann Martin" City=Lyon
  solarsync update installations recXXXXXXXXXXXXXX Status=Active "Panel Count":=12
  solarsync sync
`)
}

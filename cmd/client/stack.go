package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/iudanet/solarsync/internal/client/accessor"
	"github.com/iudanet/solarsync/internal/client/api"
	"github.com/iudanet/solarsync/internal/client/cache"
	"github.com/iudanet/solarsync/internal/client/cli"
	"github.com/iudanet/solarsync/internal/client/crm"
	"github.com/iudanet/solarsync/internal/client/outbox"
	"github.com/iudanet/solarsync/internal/client/storage/boltdb"
	"github.com/iudanet/solarsync/internal/client/sync"
	"github.com/iudanet/solarsync/internal/config"
	"github.com/iudanet/solarsync/internal/connectivity"
	"github.com/iudanet/solarsync/internal/models"
	"github.com/iudanet/solarsync/internal/worker"
	"github.com/iudanet/solarsync/internal/worker/respcache"
)

const dialTimeout = 2 * time.Second

// app собирает онлайн-часть клиента и закрывает ее в обратном порядке
type app struct {
	cfg     *config.Client
	db      *boltdb.Storage
	logger  *slog.Logger
	cleanup []func()
}

func (a *app) onClose(fn func()) {
	a.cleanup = append(a.cleanup, fn)
}

func (a *app) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}

// connect wires the worker, the accessors, the outbox and the sync service
// for one session. Everything started here is stopped by close.
func (a *app) connect(ctx context.Context, session cli.Session) (*cli.Stack, error) {
	apiURL, err := url.Parse(session.BaseURL)
	if err != nil || apiURL.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q", session.BaseURL)
	}

	caches, err := a.openResponseCache(ctx)
	if err != nil {
		return nil, err
	}
	a.onClose(func() {
		if err := caches.Close(); err != nil {
			a.logger.Error("failed to close response cache", "error", err)
		}
	})

	w, err := worker.New(worker.Config{
		APIHost:     apiURL.Host,
		Origin:      a.cfg.AppOrigin,
		ShellFiles:  a.cfg.ShellFiles,
		Version:     a.cfg.WorkerVersion,
		SkipWaiting: true,
	}, caches, nil, a.logger)
	if err != nil {
		return nil, err
	}

	// Воркер и слушатель переживают отмену команды, их останавливает close
	workerCtx, stopWorker := context.WithCancel(context.WithoutCancel(ctx))
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		w.Run(workerCtx)
	}()
	a.onClose(func() {
		stopWorker()
		<-workerDone
	})

	if err := w.Install(ctx); err != nil {
		a.logger.Warn("worker not installed, offline writes will not be queued", "error", err)
	}
	port, err := w.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to worker: %w", err)
	}

	check := a.checker()
	monitor := connectivity.NewMonitor(check(ctx), a.logger)

	client := api.NewClient(session.BaseURL, session.BaseID,
		api.WithTransport(w.Transport()),
		api.WithToken(session.Token),
		api.WithTimeout(a.cfg.Timeout))
	// Повтор из очереди идет в сеть напрямую, мимо перехватчика
	direct := api.NewClient(session.BaseURL, session.BaseID,
		api.WithToken(session.Token),
		api.WithTimeout(a.cfg.Timeout))

	queue := outbox.NewService(a.db, a.logger)
	tables := a.cfg.Tables

	service := crm.NewService(
		// Статус обновления ведется только для прайс-листа
		newAccessor(a, queue, client, monitor, api.ProductSchema, tables.Products,
			accessor.WithStatus(cache.NewStatusStore(a.db, models.EntityProducts, a.logger))),
		newAccessor(a, queue, client, monitor, api.ClientSchema, tables.Clients),
		newAccessor(a, queue, client, monitor, api.InstallationSchema, tables.Installations),
		newAccessor(a, queue, client, monitor, api.SessionSchema, tables.Sessions),
		a.logger,
	)
	syncService := sync.NewService(queue, direct, service.Accessors(), a.logger)

	listenCtx, stopListen := context.WithCancel(context.WithoutCancel(ctx))
	listenDone := make(chan struct{})
	go func() {
		defer close(listenDone)
		err := queue.Listen(listenCtx, port, func(ctx context.Context) error {
			_, err := syncService.Sync(ctx)
			return err
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("outbox listener stopped", "error", err)
		}
	}()

	proberCtx, stopProber := context.WithCancel(workerCtx)
	go connectivity.NewProber(monitor, check, a.cfg.ProbeInterval, a.logger).Run(proberCtx)

	unsubscribe := monitor.Subscribe(func(online bool) {
		if !online {
			return
		}
		go func() {
			if _, err := w.Sync(workerCtx, worker.SyncTag); err != nil {
				a.logger.Warn("background sync not started", "error", err)
			}
		}()
	})

	a.onClose(func() {
		unsubscribe()
		stopProber()
		service.Wait()
		// После остановки воркера порт закрыт: слушатель дочитывает буфер и выходит
		stopWorker()
		<-workerDone
		<-listenDone
		stopListen()
	})

	return &cli.Stack{
		CRM:    service,
		Sync:   syncService,
		Outbox: queue,
		Caches: w,
		Online: monitor.IsOnline,
	}, nil
}

// newAccessor собирает gateway и кеш одной сущности
// и регистрирует таблицу в очереди для инвалидации после повтора
func newAccessor[T models.Record](
	a *app,
	queue *outbox.Service,
	client *api.Client,
	monitor *connectivity.Monitor,
	schema api.Schema[T],
	table string,
	opts ...accessor.Option,
) *accessor.Accessor[T] {
	gateway := api.NewGateway(client, monitor, schema, table)
	entity := gateway.Entity()

	opts = append(opts, accessor.WithTimeout(a.cfg.Timeout))
	acc := accessor.New[T](cache.NewStore[T](a.db, entity, a.logger), gateway, monitor, a.logger, opts...)
	queue.Route(gateway.TablePath(), acc)
	return acc
}

type responseCache interface {
	respcache.Storage
	Close() error
}

// openResponseCache выбирает Redis, если задан адрес, иначе локальный bbolt
func (a *app) openResponseCache(ctx context.Context) (responseCache, error) {
	if a.cfg.Redis.Addr == "" {
		storage, err := respcache.OpenBolt(a.cfg.ResponseCachePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open response cache: %w", err)
		}
		return storage, nil
	}

	rdb, err := respcache.NewRedisClient(ctx, respcache.RedisOptions{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
		TLS:      a.cfg.Redis.TLS,
		Prefix:   a.cfg.Redis.Prefix,
	})
	if err != nil {
		return nil, err
	}
	return respcache.NewRedisStorage(rdb, a.cfg.Redis.Prefix), nil
}

func (a *app) checker() connectivity.Checker {
	if a.cfg.ProbeAddr != "" {
		return connectivity.DialChecker(a.cfg.ProbeAddr, dialTimeout)
	}
	return connectivity.InterfaceChecker
}

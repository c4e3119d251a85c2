package api

import (
	"fmt"

	"gathergrid/commune/internal/auth"
	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/config"
	"gathergrid/commune/internal/db"
	"gathergrid/commune/internal/db/repositories"
	"gathergrid/commune/internal/metrics"
	"gathergrid/commune/internal/services"
)

type Stores struct {
	Users         services.UserStore
	Friendships   services.FriendshipStore
	Memberships   services.MembershipStore
	Attendances   services.AttendanceStore
	Communities   services.CommunityStore
	Events        services.EventStore
	Notifications services.NotificationStore
}

type Services struct {
	Cache        common.CacheInterface
	Tokens       *auth.TokenService
	User         *services.UserService
	Community    *services.CommunityService
	Event        *services.EventService
	Auth         *services.AuthService
	Notification *services.NotificationService
}

type Dependencies struct {
	Stores   *Stores
	Services *Services
	Metrics  *metrics.MetricsRegistry

	// DB is the raw handle, used only by the health check.
	DB Pinger

	// Per-client-IP rate limit applied by the router.
	RateLimitRPS   float64
	RateLimitBurst int
}

// InitDependencies wires stores, cache and services from the loaded config.
// DB_DRIVER selects sqlx/Postgres for deployments or GORM/sqlite for local
// development; REDIS_ADDR switches the cache from in-process to Redis.
func InitDependencies(cfg *config.Config) (*Dependencies, error) {
	stores, pinger, err := initStores(cfg)
	if err != nil {
		return nil, err
	}

	var cache common.CacheInterface
	if cfg.RedisAddr != "" {
		cache = common.NewRedisCacheService(common.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword))
	} else {
		cache = common.NewCacheService(common.DefaultCacheExpiration, common.DefaultCacheCleanup)
	}

	userSvc := services.NewUserService(stores.Users, stores.Friendships, cache)
	communitySvc := services.NewCommunityService(stores.Communities, stores.Memberships)
	eventSvc := services.NewEventService(stores.Events, stores.Attendances)
	authSvc := services.NewAuthService(userSvc, communitySvc, eventSvc)
	notificationSvc := services.NewNotificationService(stores.Notifications, communitySvc, eventSvc)

	return &Dependencies{
		Stores: stores,
		Services: &Services{
			Cache:        cache,
			Tokens:       auth.NewTokenService([]byte(cfg.JWTSecret)),
			User:         userSvc,
			Community:    communitySvc,
			Event:        eventSvc,
			Auth:         authSvc,
			Notification: notificationSvc,
		},
		Metrics:        metrics.NewMetricsRegistry(),
		DB:             pinger,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, nil
}

func initStores(cfg *config.Config) (*Stores, Pinger, error) {
	switch cfg.DBDriver {
	case "postgres":
		conn, err := db.ConnectPostgres(cfg.PostgresDSN())
		if err != nil {
			return nil, nil, err
		}
		return &Stores{
			Users:         repositories.NewUserRepository(conn),
			Friendships:   repositories.NewFriendshipRepository(conn),
			Memberships:   repositories.NewMembershipRepository(conn),
			Attendances:   repositories.NewAttendanceRepository(conn),
			Communities:   repositories.NewCommunityRepository(conn),
			Events:        repositories.NewEventRepository(conn),
			Notifications: repositories.NewNotificationRepository(conn),
		}, conn, nil
	case "sqlite":
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, nil, err
		}
		return &Stores{
			Users:         repositories.NewUserRepositoryGORM(conn),
			Friendships:   repositories.NewFriendshipRepositoryGORM(conn),
			Memberships:   repositories.NewMembershipRepositoryGORM(conn),
			Attendances:   repositories.NewAttendanceRepositoryGORM(conn),
			Communities:   repositories.NewCommunityRepositoryGORM(conn),
			Events:        repositories.NewEventRepositoryGORM(conn),
			Notifications: repositories.NewNotificationRepositoryGORM(conn),
		}, sqlDB, nil
	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

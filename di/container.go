package di

import (
	"context"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"staffing-server/api"
	"staffing-server/api/counters"
	"staffing-server/api/records"
	"staffing-server/config"
	redisdao "staffing-server/dao/redis"
	"staffing-server/db"
	"staffing-server/server"
	"staffing-server/server/handlers"
	services "staffing-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	RedisTrafficDao       *redisdao.RedisTrafficDAO
	CountersAPI           counters.CountersAPI
	RecordsAPI            records.RecordsAPI
	TrafficService        *services.TrafficService
	HistoricalService     *services.HistoricalService
	RecommendationService *services.RecommendationService
	DayViewService        *services.DayViewService
	TrafficRefresher      *services.TrafficRefresherService
	DayViewHandler        *handlers.DayViewHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	StaffingHttpServer    *server.StaffingHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis mock")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.Env("REDIS_DB_ADDRESS", config.REDIS_DB_ADDRESS),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewStoreRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	}

	// Initialize traffic DAO
	redisTrafficDao := redisdao.NewRedisTrafficDAO(redisClient)

	// Initialize external APIs - mocks outside prod
	var countersAPI counters.CountersAPI
	var recordsAPI records.RecordsAPI
	if env != "prod" {
		countersAPI = counters.NewCountersApiClientMock()
		recordsAPI = records.NewRecordsApiClientMock()
		log.Printf("Using mock counters/records apis")
	} else {
		log.Printf("Using prod counters/records apis")

		countersClient := counters.NewCountersApiClient(
			api.NewHTTPClient(config.Env("COUNTERS_ENDPOINT", config.COUNTERS_ENDPOINT_BASE_V1)))
		countersClient.SetCredentials(config.Env("COUNTERS_API_KEY", ""))
		countersAPI = countersClient

		recordsClient := records.NewRecordsApiClient(
			api.NewHTTPClient(config.Env("RECORDS_ENDPOINT", config.RECORDS_ENDPOINT_BASE_V1)))
		recordsClient.SetCredentials(config.Env("RECORDS_API_KEY", ""))
		recordsAPI = recordsClient
	}

	// Initialize service layer
	trafficService := services.NewTrafficService(countersAPI, redisTrafficDao)
	historicalService := services.NewHistoricalService(trafficService, recordsAPI)
	recommendationService := services.NewRecommendationService()
	dayViewService := services.NewDayViewService(recordsAPI, redisTrafficDao, historicalService, recommendationService)
	trafficRefresher := services.NewTrafficRefresherService(
		trafficService, redisTrafficDao, config.RefresherStoreCodes())

	// Initialize handler and router
	dayViewHandler := handlers.NewDayViewHandler(dayViewService)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(dayViewHandler, muxRouter)

	// Initialize staffing http server
	staffingHttpServer := server.NewStaffingHttpServer(router, muxRouter)

	return &Container{
		RedisClient:           redisClient,
		RedisTrafficDao:       redisTrafficDao,
		CountersAPI:           countersAPI,
		RecordsAPI:            recordsAPI,
		TrafficService:        trafficService,
		HistoricalService:     historicalService,
		RecommendationService: recommendationService,
		DayViewService:        dayViewService,
		TrafficRefresher:      trafficRefresher,
		DayViewHandler:        dayViewHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		StaffingHttpServer:    staffingHttpServer,
	}
}

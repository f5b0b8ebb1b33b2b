package main

import (
	"context"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dsa-forge/forge/internal/api"
	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/service"
	"github.com/dsa-forge/forge/internal/service/problem_service"
	"github.com/dsa-forge/forge/internal/service/progress_service"
	"github.com/dsa-forge/forge/internal/service/submission_service"
	"github.com/dsa-forge/forge/internal/service/testcase_service"
	"github.com/dsa-forge/forge/internal/service/user_service"
	"github.com/dsa-forge/forge/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	apiConfig *api.Api
)

func initDatabase() *database.Queries {
	// get the database url
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		panic("dbURL not found")
	}

	// create a connection to the database
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		panic(err)
	}

	// get the query tool with this connection
	return database.New(pool)
}

func initUserService(db database.Store) *user_service.UserService {
	log.Info("initializing user service")
	return &user_service.UserService{
		DB: db,
	}
}

func initProblemService(db database.Store) *problem_service.ProblemService {
	log.Info("initializing problem service")
	return &problem_service.ProblemService{
		DB: db,
	}
}

func initSubmissionService(
	db database.Store,
	us *user_service.UserService,
	ps *problem_service.ProblemService,
) *submission_service.SubmissionService {
	log.Info("initializing submission service")
	return &submission_service.SubmissionService{
		DB:                   db,
		UserServiceConfig:    us,
		ProblemServiceConfig: ps,
	}
}

func initProgressService(
	db database.Store,
	us *user_service.UserService,
) *progress_service.ProgressService {
	log.Info("initializing progress service")
	return &progress_service.ProgressService{
		DB:                db,
		UserServiceConfig: us,
	}
}

func initTestCaseService(
	db database.Store,
	ps *problem_service.ProblemService,
) *testcase_service.TestCaseService {
	log.Info("initializing test case service")
	return &testcase_service.TestCaseService{
		DB:                   db,
		ProblemServiceConfig: ps,
	}
}

func initApi(db database.Store) *api.Api {
	log.Info("initializing api config")
	us := initUserService(db)
	ps := initProblemService(db)
	ss := initSubmissionService(db, us, ps)
	gs := initProgressService(db, us)
	ts := initTestCaseService(db, ps)
	a := api.Api{
		ProblemServiceConfig:    ps,
		SubmissionServiceConfig: ss,
		ProgressServiceConfig:   gs,
		TestCaseServiceConfig:   ts,
	}
	return &a
}

func setup() {
	godotenv.Load()
	service.InitializeServices()
	db := initDatabase()
	apiConfig = initApi(db)
}

func setCors(router *chi.Mux) {
	router.Use(
		cors.Handler(
			cors.Options{
				AllowedOrigins:   []string{"https://*", "http://*"},
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"*"},
				AllowCredentials: false,
				ExposedHeaders:   []string{"Link"},
				MaxAge:           300,
			},
		),
	)
	log.Info("cors options has been set")
}

func main() {
	setup()

	// initialize a new router
	router := chi.NewRouter()
	setCors(router)
	router.Use(middleware.RequestLogger)

	// mount the api router
	router.Mount("/api", apiConfig.Routes())
	log.Info("api router has been mounted")

	// find port for the server to start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Warnf("port not found in environment. using default port %s", port)
	}

	// find the address to start the server
	apiAddress := os.Getenv("API_URL") + ":" + port

	log.Info("starting server")
	// create a server object to listen to all requests
	srv := http.Server{
		Handler: router,
		Addr:    apiAddress,
	}
	err := srv.ListenAndServe()
	if err != nil {
		log.Fatalf("Server cannot be started. Error: %v", err)
		return
	}
}

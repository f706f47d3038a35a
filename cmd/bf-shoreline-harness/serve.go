package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/mux"
	"github.com/venicegeo/bf-shoreline-harness/pipeline"
	"github.com/venicegeo/bf-shoreline-harness/sceneindex"
	"github.com/venicegeo/bf-shoreline-harness/util"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	reportMutex sync.Mutex
	lastReport  *pipeline.Report
)

func getPortStr() string {
	if port, ok := os.LookupEnv("PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

// runHandler triggers a verification run and responds with its report
type runHandler struct{}

func (h runHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sequencer := newSequencerFunc()
	report, runErr := sequencer.Run(r.Context(), pipeline.DefaultRunConfig())

	reportMutex.Lock()
	lastReport = report
	reportMutex.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if runErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(report)
}

// reportHandler responds with the most recent run report
type reportHandler struct{}

func (h reportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reportMutex.Lock()
	report := lastReport
	reportMutex.Unlock()

	if report == nil {
		util.HTTPError(r, w, &util.BasicLogContext{}, "No run report available", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func createRouter(ctx util.LogContext) (*mux.Router, error) {
	router := mux.NewRouter()
	router.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("OK"))
	})
	router.Handle("/run", runHandler{}).Methods("POST")
	router.Handle("/report", reportHandler{}).Methods("GET")

	if localDiscoverHandler, err := sceneindex.NewDiscoverHandler(getDbConnectionFunc); err == nil {
		router.Handle("/localindex/discover/scenes", localDiscoverHandler)
	} else {
		util.LogAlert(ctx, "No scene index database available, not serving local discovery: "+err.Error())
	}

	if localSceneHandler, err := sceneindex.NewSceneHandler(getDbConnectionFunc); err == nil {
		router.Handle("/localindex/scenes/{id}", localSceneHandler)
	} else {
		util.LogAlert(ctx, "No scene index database available, not serving scene detail: "+err.Error())
	}

	return router, nil
}

func serveAction(*cli.Context) {
	logContext := &(util.BasicLogContext{})

	portStr := getPortStr()

	if err := pipeline.RunChecks(logContext); err != nil {
		util.LogAlert(logContext, "Environment checks failed at startup: "+err.Error())
	}

	if router, err := createRouter(logContext); err == nil {
		launchServerFunc(portStr, router)
	} else {
		util.LogSimpleErr(logContext, "Failed to create router: ", err)
	}
}

var launchServerFunc = launchServer

func launchServer(portStr string, router *mux.Router) {
	server := http.Server{
		Addr:    portStr,
		Handler: router,
	}

	log.Fatal(server.ListenAndServe())
}

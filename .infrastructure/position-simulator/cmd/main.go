package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	publishCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simulator_position_publishes_total",
		Help: "Общее количество опубликованных позиций",
	}, []string{"status"})

	publishDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulator_position_publish_duration_seconds",
		Help:    "Длительность публикации позиции в секундах",
		Buckets: []float64{0.05, 0.1, 0.3, 0.5, 1, 2},
	})
)

type locationPublish struct {
	ActorID   string  `json:"actor_ID"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Случайное блуждание вокруг стартовой точки (центр Лагоса).
type walker struct {
	actorID  string
	lat, lon float64
}

func (w *walker) step() {
	w.lat += (rand.Float64() - 0.5) * 0.002
	w.lon += (rand.Float64() - 0.5) * 0.002
}

func (w *walker) publish(client *http.Client, target string) {
	start := time.Now()
	defer func() {
		publishDuration.Observe(time.Since(start).Seconds())
	}()

	body, _ := json.Marshal(locationPublish{
		ActorID:   w.actorID,
		Latitude:  w.lat,
		Longitude: w.lon,
	})

	req, err := http.NewRequest(http.MethodPut, target, bytes.NewReader(body))
	if err != nil {
		publishCounter.WithLabelValues("error").Inc()
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		publishCounter.WithLabelValues("error").Inc()
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		publishCounter.WithLabelValues("ok").Inc()
	} else {
		publishCounter.WithLabelValues("rejected").Inc()
	}
}

func main() {
	target := os.Getenv("SIMULATOR_TARGET_URL")
	if target == "" {
		target = "http://localhost:8080/location"
	}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	client := &http.Client{Timeout: 5 * time.Second}

	walkers := make([]*walker, 0, 5)
	for i := 0; i < 5; i++ {
		walkers = append(walkers, &walker{
			actorID: fmt.Sprintf("sim-runner-%d", i+1),
			lat:     6.5244 + (rand.Float64()-0.5)*0.05,
			lon:     3.3792 + (rand.Float64()-0.5)*0.05,
		})
	}

	for {
		for _, w := range walkers {
			w.step()
			w.publish(client, target)
		}
		time.Sleep(5 * time.Second)
	}
}

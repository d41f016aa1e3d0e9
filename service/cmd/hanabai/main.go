// Command hanabai plays self-play games between rule-based agents and logs
// the scores.
package main

import (
	"flag"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/Tychonus/HanabAI/engine/agent"
	"github.com/Tychonus/HanabAI/service/internal/config"
	"github.com/Tychonus/HanabAI/service/internal/table"
)

type arg struct {
	envFile     string
	games       int
	metricsFile string
}

var cmdArgs arg

func main() {
	flag.StringVar(&cmdArgs.envFile, "env", ".env", "Env file with HANABAI_* settings")
	flag.IntVar(&cmdArgs.games, "games", 1, "Number of games to play")
	flag.StringVar(&cmdArgs.metricsFile, "metrics-file", "", "Write agent metrics to this file when done")
	flag.Parse()
	os.Exit(run())
}

func run() int {
	settings, err := config.Load(cmdArgs.envFile)
	if err != nil {
		logrus.WithError(err).Error("Could not load settings")
		return 1
	}
	log := settings.ConfigureLogger().WithField("logger_name", "main")

	reg := prometheus.NewRegistry()
	metrics := agent.NewMetrics(reg)

	total := 0
	for i := 0; i < cmdArgs.games; i++ {
		s := settings
		s.Seed = settings.Seed + uint64(i)

		t, err := table.NewTableFromSettings(s, agent.WithMetrics(metrics))
		if err != nil {
			log.WithError(err).Error("Could not create table")
			return 1
		}
		for seat := uint8(0); seat < s.Players; seat++ {
			if _, err := t.Register(uuid.New(), s.Seed*uint64(s.Players)+uint64(seat)); err != nil {
				log.WithError(err).Error("Could not seat agent")
				return 1
			}
		}
		score, err := t.Run()
		if err != nil {
			log.WithError(err).WithField("table", t.ID.String()).Errorf("Game aborted: %+v", err)
			return 1
		}
		total += score
		log.WithFields(logrus.Fields{"seed": s.Seed, "score": score}).Info("Game finished")
	}
	if cmdArgs.games > 0 {
		log.WithFields(logrus.Fields{
			"games": cmdArgs.games,
			"mean":  float64(total) / float64(cmdArgs.games),
		}).Info("All games finished")
	}

	if cmdArgs.metricsFile != "" {
		if err := prometheus.WriteToTextfile(cmdArgs.metricsFile, reg); err != nil {
			log.WithError(err).Error("Could not write metrics")
			return 1
		}
	}
	return 0
}

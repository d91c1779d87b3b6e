// Package main is the entry point of the interactive roster tool.
//
// The layering follows the usual split:
//   - Domain: validated entity model, events, repository contract
//   - Application: commands and queries driving the store
//   - Infrastructure: in-memory store, event bus
//   - Interface: the menu front end
package main

import (
	"fmt"
	"os"

	"github.com/tert62/COMP1551/config"
	"github.com/tert62/COMP1551/internal/application/command"
	"github.com/tert62/COMP1551/internal/application/query"
	"github.com/tert62/COMP1551/internal/domain/person"
	"github.com/tert62/COMP1551/internal/domain/shared"
	"github.com/tert62/COMP1551/internal/infrastructure/messaging"
	"github.com/tert62/COMP1551/internal/infrastructure/persistence/memory"
	"github.com/tert62/COMP1551/internal/interface/cli"
	"github.com/tert62/COMP1551/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := logger.ParseLevel(cfg.App.LogLevel)
	if cfg.App.Debug {
		level = logger.LevelDebug
	}
	log := logger.New(os.Stderr, level).With(logger.String("app", cfg.App.Name))

	roster := memory.NewRoster()
	bus := messaging.NewInMemoryEventBus(log)
	bus.SubscribeAll(func(event shared.Event) error {
		log.Debug("roster event",
			logger.String("event_type", string(event.EventType())),
			logger.String("event_id", event.EventID()),
		)
		return nil
	})

	handlers := cli.Handlers{
		Enroll: command.NewEnrollPersonHandler(roster, bus, log),
		Edit:   command.NewEditPersonHandler(roster, bus, log),
		Remove: command.NewRemovePersonHandler(roster, bus, log),
		Get:    query.NewGetPersonHandler(roster),
		List:   query.NewListPeopleHandler(roster),
	}

	if cfg.App.DemoSeed {
		seedDemo(handlers.Enroll, log)
	}

	log.Info("roster started",
		logger.String("environment", string(cfg.App.Environment)),
		logger.Int("people", roster.Count()),
	)

	cli.NewMenu(os.Stdin, os.Stdout, handlers, log).Run()
}

// seedDemo preloads a few sample people so the menu has data to show.
func seedDemo(enroll *command.EnrollPersonHandler, log *logger.Logger) {
	seeds := []command.EnrollPersonCommand{
		{
			Role:      person.RoleTeacher,
			Name:      "Alice Smith",
			Telephone: "0901234567",
			Email:     "alice@school.edu",
			Salary:    1500,
			Subjects:  []string{"Math", "Physics"},
		},
		{
			Role:         person.RoleAdmin,
			Name:         "Bob Tran",
			Telephone:    "0912345678",
			Email:        "bob@school.edu",
			Salary:       1200,
			FullTime:     true,
			WorkingHours: 40,
		},
		{
			Role:      person.RoleStudent,
			Name:      "Carol Diaz",
			Telephone: "0923456789",
			Email:     "carol@school.edu",
			Subjects:  []string{"Chemistry", "Biology", "English"},
		},
	}

	for _, seed := range seeds {
		if _, err := enroll.Handle(seed); err != nil {
			log.Warn("demo seed skipped", logger.String("name", seed.Name), logger.Err(err))
		}
	}
}

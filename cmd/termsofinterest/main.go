// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ClusterCockpit/terms-of-interest/internal/loader"
	"github.com/ClusterCockpit/terms-of-interest/internal/log"
	"github.com/ClusterCockpit/terms-of-interest/internal/matcher"
	"github.com/ClusterCockpit/terms-of-interest/internal/pipeline"
	"github.com/ClusterCockpit/terms-of-interest/internal/sink"
)

// ProgramConfig mirrors the recognized options table in spec §6. Any
// field present in -config's JSON file seeds the default; a flag the
// user actually passed on the command line always wins.
type ProgramConfig struct {
	ExecutionDate  string `json:"execution_date"`
	FormatTemplate string `json:"format_template"`
	TermsetAlgo    string `json:"termset_algo"`
	Unit1Userset   string `json:"unit1_userset"`
	Unit1Termset   string `json:"unit1_termset"`
	Unit2Userset   string `json:"unit2_userset"`
	Unit2Termset   string `json:"unit2_termset"`
	DBURI          string `json:"db_uri"`
}

func main() {
	cliInit()
	log.SetLevel(flagLogLevel)

	cfg := ProgramConfig{
		TermsetAlgo: flagTermsetAlgo,
	}
	if flagConfigFile != "" {
		if err := loadConfigFile(flagConfigFile, &cfg); err != nil {
			log.Fatal(err)
		}
	}
	applyExplicitFlags(&cfg)

	if flag.NArg() == 0 {
		log.Fatal("usage: termsofinterest [flags] <data-file> [<data-file> ...]")
	}

	algo, err := resolveAlgo(cfg.TermsetAlgo)
	if err != nil {
		log.Fatal(err)
	}

	units, err := buildUnits(cfg, algo)
	if err != nil {
		log.Fatal(err)
	}

	s, closeSink, err := buildSink(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeSink()

	opts := []pipeline.Option{pipeline.WithSink(s)}
	if cfg.ExecutionDate != "" {
		d, err := time.Parse("2006-01-02", cfg.ExecutionDate)
		if err != nil {
			log.Fatalf("bad -execution-date %q: %s", cfg.ExecutionDate, err)
		}
		opts = append(opts, pipeline.WithExecutionDate(d))
	}

	p := pipeline.New(units, opts...)

	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("opening %q: %s", path, err)
		}
		err = p.RunFile(context.Background(), f)
		f.Close()
		if err != nil {
			log.Fatalf("processing %q: %s", path, err)
		}
	}
}

// resolveAlgo maps the termset_algo option onto matcher.Algo, surfacing
// matcher.ErrUnknownAlgo (fatal, fail fast, before ingestion) verbatim.
func resolveAlgo(name string) (matcher.Algo, error) {
	algo := matcher.Algo(name)
	if _, err := matcher.New(algo); err != nil {
		return "", err
	}
	return algo, nil
}

func buildUnits(cfg ProgramConfig, algo matcher.Algo) ([]pipeline.Unit, error) {
	specs := []struct{ userset, termset string }{
		{cfg.Unit1Userset, cfg.Unit1Termset},
		{cfg.Unit2Userset, cfg.Unit2Termset},
	}

	var units []pipeline.Unit
	for i, spec := range specs {
		if spec.userset == "" && spec.termset == "" {
			continue
		}

		nodeIDs, err := loader.ReadLines(spec.userset)
		if err != nil {
			return nil, fmt.Errorf("unit %d userset: %w", i+1, err)
		}
		terms, err := loader.ReadLines(spec.termset)
		if err != nil {
			return nil, fmt.Errorf("unit %d termset: %w", i+1, err)
		}

		m, err := matcher.New(algo)
		if err != nil {
			return nil, err
		}
		for _, term := range terms {
			m.AddTerm(term)
		}
		m.Build()

		units = append(units, pipeline.Unit{
			Users:   pipeline.NewUserSet(nodeIDs),
			Matcher: m,
		})
	}
	return units, nil
}

func buildSink(cfg ProgramConfig) (pipeline.Sink, func(), error) {
	if cfg.DBURI == "" {
		log.Info("no db-uri configured, results go to stdout only")
		s, err := sink.NewStdout(os.Stdout, cfg.FormatTemplate)
		if err != nil {
			return nil, func() {}, err
		}
		return s, func() {}, nil
	}

	sqlSink, err := sink.OpenSQLite(cfg.DBURI)
	if err != nil {
		return nil, func() {}, fmt.Errorf("sink: %w", err)
	}
	return sqlSink, func() { sqlSink.Close() }, nil
}

func loadConfigFile(path string, cfg *ProgramConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	return dec.Decode(cfg)
}

// applyExplicitFlags overlays any flag the user actually passed over
// whatever -config populated, giving flags the final say as §6 implies.
func applyExplicitFlags(cfg *ProgramConfig) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "execution-date":
			cfg.ExecutionDate = flagExecutionDate
		case "format-template":
			cfg.FormatTemplate = flagFormatTemplate
		case "termset-algo":
			cfg.TermsetAlgo = flagTermsetAlgo
		case "unit1-userset":
			cfg.Unit1Userset = flagUnit1Userset
		case "unit1-termset":
			cfg.Unit1Termset = flagUnit1Termset
		case "unit2-userset":
			cfg.Unit2Userset = flagUnit2Userset
		case "unit2-termset":
			cfg.Unit2Termset = flagUnit2Termset
		case "db-uri":
			cfg.DBURI = flagDBURI
		}
	})
}

// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/someonegg/prefmatch/housing"
)

type config struct {
	Input   string `mapstructure:"input"`
	Output  string `mapstructure:"output"`
	Verbose bool   `mapstructure:"verbose"`
}

func loadConfig(path string) (config, error) {
	v := viper.New()
	v.SetDefault("input", "")
	v.SetDefault("output", "")
	v.SetDefault("verbose", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("load config file failed: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("parse config file failed: %w", err)
	}
	return cfg, nil
}

func doRun(cfg config) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input file failed: %w", err)
	}
	defer f.Close()

	engine, err := housing.Parse(f)
	if err != nil {
		return fmt.Errorf("parse input failed: %w", err)
	}
	engine.Logger = logger

	if err := engine.Run(); err != nil {
		return fmt.Errorf("allocation failed: %w", err)
	}

	results, err := engine.Results()
	if err != nil {
		return err
	}
	table := housing.Format(results)

	if cfg.Output == "" {
		fmt.Println(table)
		return nil
	}
	if err := os.WriteFile(cfg.Output, []byte(table+"\n"), 0644); err != nil {
		return fmt.Errorf("write output file failed: %w", err)
	}
	logger.Info("assignment written", "groups", len(results), "output", cfg.Output)
	return nil
}

// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

// inlinekit-render renders inline-chat context from the command line:
// the cursor or selection window for a file, or a replay of a recorded
// session transcript. It exists for debugging prompt assembly and for
// golden-output inspection — editor hosts call the library directly.
//
// Usage:
//
//	inlinekit-render --cursor 12:4 path/to/file.go
//	inlinekit-render --selection 3:0-9:17 path/to/file.go
//	inlinekit-render --session turn.cbor --document-version 7 path/to/file.go
//
// Configuration (model, token budget) comes from INLINEKIT_CONFIG or
// --config; both are optional and only affect --prune.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/inlinekit/inlinekit/lib/config"
	"github.com/inlinekit/inlinekit/lib/document"
	"github.com/inlinekit/inlinekit/lib/inline"
	"github.com/inlinekit/inlinekit/lib/llm"
	llmcontext "github.com/inlinekit/inlinekit/lib/llm/context"
	"github.com/inlinekit/inlinekit/lib/process"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	var (
		cursorFlag    = pflag.String("cursor", "", "cursor position as line:column (0-based)")
		selectionFlag = pflag.String("selection", "", "selection as line:column-line:column (0-based)")
		sessionFlag   = pflag.String("session", "", "recorded session transcript (CBOR) to replay")
		versionFlag   = pflag.Int("document-version", -1, "current document version for session replay")
		configFlag    = pflag.String("config", "", "path to inlinekit.yaml")
		pruneFlag     = pflag.Bool("prune", false, "run replayed messages through the token-budget pruner")
		jsonFlag      = pflag.Bool("json", false, "emit JSON instead of plain text")
		verboseFlag   = pflag.Bool("verbose", false, "debug logging")
	)
	pflag.Parse()

	logLevel := slog.LevelInfo
	if *verboseFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	if pflag.NArg() != 1 {
		return fmt.Errorf("exactly one file argument required (got %d)", pflag.NArg())
	}
	path := pflag.Arg(0)

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}

	source := diskSource{}
	snapshot, err := source.Snapshot(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded snapshot",
		"path", path,
		"lines", snapshot.LineCount(),
		"language", document.LanguageID(snapshot),
	)

	switch {
	case *cursorFlag != "":
		cursor, err := parsePosition(*cursorFlag)
		if err != nil {
			return err
		}
		fmt.Println(inline.CursorWindow(snapshot, cursor))
		return nil

	case *selectionFlag != "":
		selection, err := parseRange(*selectionFlag)
		if err != nil {
			return err
		}
		fmt.Println(inline.SelectionWindow(snapshot, selection))
		return nil

	case *sessionFlag != "":
		return replaySession(*sessionFlag, snapshot, *versionFlag, cfg, source, *pruneFlag, *jsonFlag, logger)

	default:
		return fmt.Errorf("one of --cursor, --selection, or --session is required")
	}
}

// loadConfig resolves configuration: explicit --config path, then
// INLINEKIT_CONFIG if set, then defaults. An unset environment
// variable is not an error here — the CLI works configless.
func loadConfig(flagPath string) (*config.Config, error) {
	if flagPath != "" {
		return config.LoadFile(flagPath)
	}
	if os.Getenv("INLINEKIT_CONFIG") != "" {
		return config.Load()
	}
	return config.Default(), nil
}

// replaySession loads a recorded session, assembles its transcript
// against a fresh snapshot, converts to messages, and prints them.
func replaySession(sessionPath string, snapshot document.Snapshot, documentVersion int, cfg *config.Config, source inline.SnapshotSource, prune, asJSON bool, logger *slog.Logger) error {
	file, err := os.Open(sessionPath)
	if err != nil {
		return err
	}
	defer file.Close()

	session, err := inline.ReadSession(file)
	if err != nil {
		return err
	}

	// The on-disk snapshot has no editor version counter. Unless the
	// caller states the current version, replay assumes the document
	// is unchanged since the recorded request.
	if documentVersion < 0 {
		documentVersion = session.RequestVersion
	}
	versioned := versionedSnapshot{Snapshot: snapshot, version: documentVersion}

	request := session.RenderRequestFor(versioned)
	segments := inline.AssembleTranscript(request)
	if segments == nil {
		logger.Info("session has no tool-call rounds; nothing to render")
		return nil
	}

	cropper := &inline.WindowedRenderer{Source: source, ContextLines: cfg.Crop.ContextLines}
	messages, err := inline.MessagesFromSegments(segments, cropper)
	if err != nil {
		return err
	}

	if prune {
		budget := llmcontext.Budget{
			ContextWindow:   cfg.Budget.ContextWindow,
			MaxOutputTokens: cfg.Budget.MaxOutputTokens,
			OverheadTokens:  cfg.Budget.OverheadTokens,
		}
		if budget.ContextWindow == 0 {
			budget.ContextWindow = llmcontext.ContextWindowForModel(cfg.Model)
		}
		manager := llmcontext.NewTruncating(budget.MessageTokenBudget(), llmcontext.NewCharEstimator())
		for _, message := range messages {
			manager.Append(message)
		}
		messages, err = manager.Messages(context.Background())
		if err != nil {
			logger.Warn("history exceeds budget even after maximum eviction", "error", err)
		}
		logger.Debug("pruned history",
			"evicted_turn_groups", manager.EvictedTurnGroups(),
			"budget_tokens", budget.MessageTokenBudget(),
		)
	}

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(messages)
	}

	for _, message := range messages {
		fmt.Printf("[%s]\n", message.Role)
		for _, block := range message.Content {
			printBlock(block)
		}
		fmt.Println()
	}
	return nil
}

func printBlock(block llm.ContentBlock) {
	switch block.Type {
	case llm.ContentText:
		fmt.Println(block.Text)
	case llm.ContentToolUse:
		fmt.Printf("tool call %s %s %s\n", block.ToolUse.ID, block.ToolUse.Name, block.ToolUse.Input)
	case llm.ContentToolResult:
		status := "ok"
		if block.ToolResult.IsError {
			status = "error"
		}
		fmt.Printf("tool result %s (%s): %s\n", block.ToolResult.ToolUseID, status, block.ToolResult.Content)
	}
}

// parsePosition parses "line:column" with 0-based components.
func parsePosition(value string) (document.Position, error) {
	lineText, columnText, found := strings.Cut(value, ":")
	if !found {
		return document.Position{}, fmt.Errorf("position %q: want line:column", value)
	}
	line, err := strconv.Atoi(lineText)
	if err != nil {
		return document.Position{}, fmt.Errorf("position %q: bad line: %w", value, err)
	}
	column, err := strconv.Atoi(columnText)
	if err != nil {
		return document.Position{}, fmt.Errorf("position %q: bad column: %w", value, err)
	}
	return document.Position{Line: line, Column: column}, nil
}

// parseRange parses "line:column-line:column".
func parseRange(value string) (document.Range, error) {
	startText, endText, found := strings.Cut(value, "-")
	if !found {
		return document.Range{}, fmt.Errorf("range %q: want start-end", value)
	}
	start, err := parsePosition(startText)
	if err != nil {
		return document.Range{}, err
	}
	end, err := parsePosition(endText)
	if err != nil {
		return document.Range{}, err
	}
	return document.Range{Start: start, End: end}, nil
}

// diskSource resolves paths to snapshots by reading files from disk.
// Disk files carry no editor version counter; snapshots load at
// version 0 and replaySession overlays the caller-stated version.
type diskSource struct{}

func (diskSource) Snapshot(path string) (document.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return document.NewMemoryFromText(path, "", 0, string(data)), nil
}

// versionedSnapshot overlays a version number on a snapshot whose
// backing store has none.
type versionedSnapshot struct {
	document.Snapshot
	version int
}

func (s versionedSnapshot) Version() int { return s.version }

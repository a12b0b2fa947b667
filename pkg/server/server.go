package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/spell"
)

// Server handles the IPC for spelling analysis. The request loop is the
// single writer of the data snapshot; every query runs against the snapshot
// current when it arrived.
type Server struct {
	data    spell.Data
	cfg     *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a spelling server using stdin/stdout for IPC.
func NewServer(data spell.Data, cfg *config.Config) *Server {
	return &Server{
		data:    data,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(os.Stdin),
		encoder: msgpack.NewEncoder(os.Stdout),
	}
}

// NewServerWithIO creates a server on explicit streams, mainly for tests.
func NewServerWithIO(data spell.Data, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		data:    data,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Data returns the current snapshot, mainly for tests.
func (s *Server) Data() spell.Data { return s.data }

// Start processes requests until the input stream closes.
func (s *Server) Start() error {
	log.Debug("Starting server loop")
	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Cmd {
	case "check":
		s.handleCheck(req)
	case "fix":
		s.handleFix(req)
	case "split":
		s.handleSplit(req)
	case "complete":
		s.handleComplete(req)
	case "learn":
		s.handleLearn(req)
	case "ignore":
		s.handleIgnore(req)
	case "save":
		s.handleSave(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown command: %s", req.Cmd), 400)
	}
}

// validWord applies length limits and, unless disabled, the input filter
// before a word reaches the engines.
func (s *Server) validWord(req Request) bool {
	if req.Word == "" {
		s.sendError(req.ID, "Missing 'w' parameter", 400)
		return false
	}
	if len(req.Word) > s.cfg.Server.MaxWordLen {
		s.sendError(req.ID, fmt.Sprintf("Word exceeds maximum length of %d characters", s.cfg.Server.MaxWordLen), 400)
		return false
	}
	if s.cfg.Server.EnableFilter && !utils.IsValidInput(req.Word) {
		s.sendError(req.ID, "Word rejected by input filter", 400)
		return false
	}
	return true
}

func (s *Server) handleCheck(req Request) {
	if !s.validWord(req) {
		return
	}
	s.send(CheckResponse{ID: req.ID, Word: req.Word, Known: s.data.Known(req.Word)})
}

func (s *Server) handleFix(req Request) {
	if !s.validWord(req) {
		return
	}
	limit := req.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	m := spell.NewMisspelling(req.Word, req.Word, 0)
	fixes := spell.FirstFixes(m, s.data, limit)
	elapsed := time.Since(start)
	log.Debugf("fix %q: %d candidates in %v", req.Word, len(fixes), elapsed)

	suggestions := make([]FixSuggestion, len(fixes))
	ranks := utils.CreateRankList(len(fixes))
	for i, fix := range fixes {
		suggestions[i] = FixSuggestion{
			Word: fix.Value,
			Kind: fix.Kind.String(),
			Rank: ranks[i],
		}
	}
	s.send(FixResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleSplit(req Request) {
	if !s.validWord(req) {
		return
	}
	indexes := spell.SplitIndexes(req.Word, s.data)
	parts := make([]string, len(indexes))
	for i, idx := range indexes {
		parts[i] = req.Word[:idx] + " " + req.Word[idx:]
	}
	s.send(SplitResponse{ID: req.ID, Indexes: indexes, Parts: parts, Count: len(indexes)})
}

func (s *Server) handleComplete(req Request) {
	if !s.validWord(req) {
		return
	}
	limit := req.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}
	words := s.data.List.WordsWithPrefix(req.Word, limit)
	s.send(CompleteResponse{ID: req.ID, Words: words, Count: len(words)})
}

func (s *Server) handleLearn(req Request) {
	if !s.validWord(req) {
		return
	}
	if req.Fix == "" {
		s.sendError(req.ID, "Missing 'f' parameter", 400)
		return
	}
	kind := parseKind(req.Kind)
	s.data = s.data.AddFix(req.Word, spell.Fix{Value: req.Fix, Kind: kind})
	log.Debugf("learned %q -> %q (%s)", req.Word, req.Fix, kind)
	s.send(StatusResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) handleIgnore(req Request) {
	if !s.validWord(req) {
		return
	}
	s.data = s.data.AddIgnore(req.Word)
	s.send(StatusResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) handleSave(req Request) {
	if err := dictionary.SaveWordListFile(s.data.List, s.cfg.Dict.WordsFile); err != nil {
		s.send(StatusResponse{ID: req.ID, Status: "error", Error: err.Error()})
		return
	}
	if err := dictionary.SaveFixFile(s.data.Fixes.Pairs(), s.cfg.Dict.FixesFile); err != nil {
		s.send(StatusResponse{ID: req.ID, Status: "error", Error: err.Error()})
		return
	}
	s.send(StatusResponse{ID: req.ID, Status: "ok"})
}

func parseKind(kind string) spell.FixKind {
	switch strings.ToLower(kind) {
	case "listed":
		return spell.KindListed
	case "split":
		return spell.KindSplit
	case "swap":
		return spell.KindSwap
	case "fuzzy":
		return spell.KindFuzzy
	}
	return spell.KindEntered
}

func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(RequestError{ID: id, Error: message, Code: code})
}

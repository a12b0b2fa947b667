// Package cli handles cmd line input and fix suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/spell"
)

// InputHandler processes words from stdin and prints candidate corrections.
// ":ignore <word>" and ":learn <wrong>=<right>" advance the session data the
// same way the server commands do.
type InputHandler struct {
	data     spell.Data
	limit    int
	noFilter bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(data spell.Data, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		data:     data,
		limit:    limit,
		noFilter: noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("SpellServe CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to check it (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			h.handleCommand(line)
			continue
		}
		h.handleInput(line)
	}
}

// handleCommand processes session commands that change the data snapshot.
func (h *InputHandler) handleCommand(line string) {
	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "ignore":
		if arg == "" {
			log.Error("usage: :ignore <word>")
			return
		}
		h.data = h.data.AddIgnore(arg)
		log.Printf("ignoring '%s' for this session", arg)
	case "learn":
		wrong, right, ok := strings.Cut(arg, "=")
		if !ok || wrong == "" || right == "" {
			log.Error("usage: :learn <wrong>=<right>")
			return
		}
		h.data = h.data.AddFix(wrong, spell.Fix{Value: right, Kind: spell.KindEntered})
		log.Printf("learned '%s' -> '%s'", wrong, right)
	default:
		log.Errorf("unknown command: %s", cmd)
	}
}

// handleInput checks a single word and prints ranked fix candidates.
func (h *InputHandler) handleInput(word string) {
	if !h.noFilter && !utils.IsValidInput(word) {
		log.Infof("Skipping '%s': not a checkable word", word)
		return
	}

	if h.data.Known(word) {
		log.Printf("'%s' is spelled correctly", word)
		return
	}

	start := time.Now()
	m := spell.NewMisspelling(word, word, 0)
	fixes := spell.FirstFixes(m, h.data, h.limit)
	splits := spell.SplitIndexes(word, h.data)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	if len(fixes) == 0 && len(splits) == 0 {
		log.Warnf("No fixes found for '%s'", word)
		return
	}

	if len(fixes) > 0 {
		log.Printf("Found %d fixes for '%s':", len(fixes), word)
		for i, fix := range fixes {
			clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", fix.Value)
			log.Printf("%2d. %-40s (%s)", i+1, clWord, fix.Kind)
		}
	}
	for _, idx := range splits {
		log.Printf("    split: %s %s", word[:idx], word[idx:])
	}
}

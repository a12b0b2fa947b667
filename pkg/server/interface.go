/*
Package server implements msgpack IPC for spelling-fix services.

The protocol uses binary msgpack encoding over stdin/stdout. Clients send one
request per message and receive one response, processed synchronously with
timing info included where it matters.

# IPC

Each request carries an ID, a command, and the fields the command needs:

	{"id": "req_001", "cmd": "fix", "w": "recieve", "l": 8}

The server answers with ranked fix candidates:

	{"id": "req_001", "s": [{"w": "receive", "k": "swap", "r": 1}], "c": 1, "t": 45}

# Commands

  - check: corpus membership of a word
  - fix: ranked candidate corrections for a misspelled word
  - split: positions where a run-together word decomposes into two corpus words
  - complete: corpus words starting with a prefix
  - learn: record an accepted correction for a misspelling
  - ignore: accept a word as correct for this session
  - save: persist the word list and fix list back to their files
  - health: liveness probe

learn and ignore advance an immutable data snapshot; the request loop is the
single writer, so queries always observe a consistent corpus.
*/
package server

// Request is the envelope for every incoming message.
type Request struct {
	ID    string `msgpack:"id"`
	Cmd   string `msgpack:"cmd"`
	Word  string `msgpack:"w,omitempty"`
	Fix   string `msgpack:"f,omitempty"`
	Kind  string `msgpack:"k,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// FixSuggestion is one ranked candidate correction.
type FixSuggestion struct {
	Word string `msgpack:"w"`
	Kind string `msgpack:"k"`
	Rank uint16 `msgpack:"r"`
}

// FixResponse answers a fix command.
type FixResponse struct {
	ID          string          `msgpack:"id"`
	Suggestions []FixSuggestion `msgpack:"s"`
	Count       int             `msgpack:"c"`
	TimeTaken   int64           `msgpack:"t"`
}

// CheckResponse answers a check command.
type CheckResponse struct {
	ID    string `msgpack:"id"`
	Word  string `msgpack:"w"`
	Known bool   `msgpack:"ok"`
}

// SplitResponse answers a split command. Parts holds the "left right" word
// pair for each index, in the same order.
type SplitResponse struct {
	ID      string   `msgpack:"id"`
	Indexes []int    `msgpack:"i"`
	Parts   []string `msgpack:"p,omitempty"`
	Count   int      `msgpack:"c"`
}

// CompleteResponse answers a complete command.
type CompleteResponse struct {
	ID    string   `msgpack:"id"`
	Words []string `msgpack:"s"`
	Count int      `msgpack:"c"`
}

// StatusResponse answers learn, ignore, save and health commands.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
}

// RequestError holds basic error information for failed requests.
type RequestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

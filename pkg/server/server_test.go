package server

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/goleak"

	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/spell"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testData(words ...string) spell.Data {
	return spell.NewData(dictionary.NewWordList(words...))
}

// runRequests feeds encoded requests through a server and returns the raw
// response stream for decoding.
func runRequests(t *testing.T, data spell.Data, cfg *config.Config, reqs ...Request) *msgpack.Decoder {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range reqs {
		require.NoError(t, enc.Encode(req))
	}
	var out bytes.Buffer
	srv := NewServerWithIO(data, cfg, &in, &out)
	require.NoError(t, srv.Start())
	return msgpack.NewDecoder(&out)
}

func TestServerCheck(t *testing.T) {
	cfg := config.DefaultConfig()
	dec := runRequests(t, testData("receive"), cfg,
		Request{ID: "r1", Cmd: "check", Word: "receive"},
		Request{ID: "r2", Cmd: "check", Word: "recieve"},
	)

	var known, unknown CheckResponse
	require.NoError(t, dec.Decode(&known))
	require.NoError(t, dec.Decode(&unknown))
	assert.True(t, known.Known)
	assert.False(t, unknown.Known)
	assert.Equal(t, "r1", known.ID)
	assert.Equal(t, "r2", unknown.ID)
}

func TestServerFix(t *testing.T) {
	cfg := config.DefaultConfig()
	dec := runRequests(t, testData("receive"), cfg,
		Request{ID: "r1", Cmd: "fix", Word: "recieve", Limit: 8},
	)

	var resp FixResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "receive", resp.Suggestions[0].Word)
	assert.Equal(t, "swap", resp.Suggestions[0].Kind)
	assert.Equal(t, uint16(1), resp.Suggestions[0].Rank)
	assert.GreaterOrEqual(t, resp.TimeTaken, int64(0))
}

func TestServerFixRespectsLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	dec := runRequests(t, testData("relieve", "receive", "believe"), cfg,
		Request{ID: "r1", Cmd: "fix", Word: "recieve", Limit: 1},
	)

	var resp FixResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 1, resp.Count)
}

func TestServerSplit(t *testing.T) {
	cfg := config.DefaultConfig()
	dec := runRequests(t, testData("foo", "bar"), cfg,
		Request{ID: "r1", Cmd: "split", Word: "foobar"},
	)

	var resp SplitResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, []int{3}, resp.Indexes)
	assert.Equal(t, []string{"foo bar"}, resp.Parts)
}

func TestServerComplete(t *testing.T) {
	cfg := config.DefaultConfig()
	dec := runRequests(t, testData("note", "notebook", "nose"), cfg,
		Request{ID: "r1", Cmd: "complete", Word: "note", Limit: 8},
	)

	var resp CompleteResponse
	require.NoError(t, dec.Decode(&resp))
	assert.ElementsMatch(t, []string{"note", "notebook"}, resp.Words)
	assert.Equal(t, 2, resp.Count)
}

func TestServerLearnThenFix(t *testing.T) {
	cfg := config.DefaultConfig()
	dec := runRequests(t, testData("believe"), cfg,
		Request{ID: "r1", Cmd: "learn", Word: "recieve", Fix: "believe", Kind: "entered"},
		Request{ID: "r2", Cmd: "fix", Word: "recieve"},
	)

	var status StatusResponse
	require.NoError(t, dec.Decode(&status))
	assert.Equal(t, "ok", status.Status)

	var resp FixResponse
	require.NoError(t, dec.Decode(&resp))
	require.NotZero(t, resp.Count)
	assert.Equal(t, "believe", resp.Suggestions[0].Word)
	assert.Equal(t, "listed", resp.Suggestions[0].Kind)
}

func TestServerIgnoreSuppressesFixes(t *testing.T) {
	cfg := config.DefaultConfig()
	dec := runRequests(t, testData("receive"), cfg,
		Request{ID: "r1", Cmd: "ignore", Word: "receive"},
		Request{ID: "r2", Cmd: "fix", Word: "recieve"},
	)

	var status StatusResponse
	require.NoError(t, dec.Decode(&status))
	assert.Equal(t, "ok", status.Status)

	var resp FixResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Zero(t, resp.Count)
}

func TestServerSave(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Dict.WordsFile = filepath.Join(dir, "words.txt")
	cfg.Dict.FixesFile = filepath.Join(dir, "fixes.txt")

	dec := runRequests(t, testData("receive", "believe"), cfg,
		Request{ID: "r1", Cmd: "learn", Word: "recieve", Fix: "receive"},
		Request{ID: "r2", Cmd: "save"},
	)

	var learned, saved StatusResponse
	require.NoError(t, dec.Decode(&learned))
	require.NoError(t, dec.Decode(&saved))
	assert.Equal(t, "ok", saved.Status)

	list, err := dictionary.LoadWordListFile(cfg.Dict.WordsFile, false)
	require.NoError(t, err)
	assert.True(t, list.Contains("receive"))

	pairs, err := dictionary.LoadFixFile(cfg.Dict.FixesFile)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"recieve": {"receive"}}, pairs)
}

func TestServerValidation(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxWordLen = 10
	cfg.Server.EnableFilter = true

	dec := runRequests(t, testData("receive"), cfg,
		Request{ID: "r1", Cmd: "fix"},
		Request{ID: "r2", Cmd: "fix", Word: "waaaaaaaaaaaaaaytoolong"},
		Request{ID: "r3", Cmd: "fix", Word: "abc$def"},
		Request{ID: "r4", Cmd: "bogus"},
	)

	for _, id := range []string{"r1", "r2", "r3", "r4"} {
		var errResp RequestError
		require.NoError(t, dec.Decode(&errResp))
		assert.Equal(t, id, errResp.ID)
		assert.Equal(t, 400, errResp.Code)
		assert.NotEmpty(t, errResp.Error)
	}
}

func TestServerHealth(t *testing.T) {
	cfg := config.DefaultConfig()
	dec := runRequests(t, testData(), cfg,
		Request{ID: "r1", Cmd: "health"},
	)

	var resp StatusResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
}

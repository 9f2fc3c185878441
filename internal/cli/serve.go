package cli

import (
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lewinzki/hpack"
	"github.com/lewinzki/hpack/internal/corpus"
	"github.com/lewinzki/hpack/internal/recovery"
)

// inspectRequest is one message from an inspector client
type inspectRequest struct {
	Block string `json:"block"`
}

// inspectResponse answers with the decoded fields or the decode error
type inspectResponse struct {
	Seq     int                 `json:"seq"`
	Headers []corpus.HeaderPair `json:"headers,omitempty"`
	Error   string              `json:"error,omitempty"`
}

func (a *app) newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the live header-block inspector endpoint",
		Long: `Serve a websocket endpoint at /inspect. Each connection owns a fresh
decoder context; every message carries one hex header block and is answered
with the decoded header fields. A protocol error poisons the context, like it
would poison a real connection direction, and closes the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = a.cfg.Listen
			}

			inspector := &inspector{
				cfg:       a.cfg,
				logger:    a.logger,
				recoverer: recovery.NewRecoverer(a.logger),
				upgrader: websocket.Upgrader{
					ReadBufferSize:  4096,
					WriteBufferSize: 4096,
				},
			}

			mux := http.NewServeMux()
			mux.HandleFunc("/inspect", inspector.handle)

			server := &http.Server{
				Addr:              listen,
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			}

			a.logger.Info("inspector listening", zap.String("address", listen))
			return server.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	return cmd
}

type inspector struct {
	cfg       *Config
	logger    *zap.Logger
	recoverer *recovery.Recoverer
	upgrader  websocket.Upgrader
}

func (in *inspector) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := in.upgrader.Upgrade(w, r, nil)
	if err != nil {
		in.logger.Warn("websocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	in.logger.Info("inspector session opened", zap.String("remote_addr", r.RemoteAddr))
	in.recoverer.SafeGo("inspector-session", func() {
		defer conn.Close()
		in.session(conn)
	})
}

// session decodes blocks for one connection until it closes or a protocol
// error poisons the context
func (in *inspector) session(conn *websocket.Conn) {
	decoder := hpack.NewDecoder(in.cfg.TableSize)
	seq := 0

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				in.logger.Debug("inspector session closed", zap.Error(err))
			}
			return
		}

		var req inspectRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			in.writeResponse(conn, inspectResponse{Seq: seq, Error: "invalid request: " + err.Error()})
			continue
		}

		block, err := hex.DecodeString(strings.ReplaceAll(req.Block, " ", ""))
		if err != nil {
			in.writeResponse(conn, inspectResponse{Seq: seq, Error: "invalid hex: " + err.Error()})
			continue
		}

		headers, err := decoder.Decode(block)
		if err != nil {
			// The shared context is no longer trustworthy; end the session
			// the way a connection error would
			in.writeResponse(conn, inspectResponse{Seq: seq, Error: err.Error()})
			in.logger.Warn("inspector context poisoned", zap.Int("seq", seq), zap.Error(err))
			return
		}

		resp := inspectResponse{Seq: seq}
		for _, field := range headers.Fields() {
			resp.Headers = append(resp.Headers, corpus.HeaderPair{Name: field.Name, Value: field.Value})
		}
		in.writeResponse(conn, resp)
		seq++
	}
}

func (in *inspector) writeResponse(conn *websocket.Conn, resp inspectResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		in.logger.Error("marshal response", zap.Error(err))
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		in.logger.Debug("write response", zap.Error(err))
	}
}

package e2e

import (
	"chat-session/auth"
	"chat-session/client"
	"chat-session/domain"
	"chat-session/repositories"
	"chat-session/services"
	"chat-session/transport"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseSessionSuite struct {
	suite.Suite
	Config Config
	db     *badger.DB
}

// SetupSuite loads the environment configuration and skips when no live server is configured.
func (s *BaseSessionSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if !s.Config.Enabled() {
		s.T().Skip("E2E_CHAT_API_URL, E2E_CHAT_PUSH_URL and E2E_CHAT_TOKEN are required")
	}
	s.db, err = badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
}

func (s *BaseSessionSuite) TearDownSuite() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// NewSession wires a real session the way the CLI does, the token coming from the launch address.
func (s *BaseSessionSuite) NewSession() *services.SessionController {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	address, err := auth.NewLaunchAddress("chat://e2e?" + url.Values{auth.TokenParam: {s.Config.Token}}.Encode())
	s.Require().NoError(err)
	store := repositories.NewCredentialRepository(s.db, log, "e2e")
	return services.NewSessionController(
		log,
		auth.NewResolver(log, address, store, nil),
		client.NewChatAPI(s.Config.APIURL, 0, log),
		transport.NewDialer(s.Config.PushURL, log),
		store,
		repositories.NewSelectionStore(s.Config.ServerID, s.Config.ChannelID),
		services.SessionOptions{},
	)
}

// Step prints a colorized header, runs fn, then dumps the view when E2E_DEBUG_JSON is set.
func (s *BaseSessionSuite) Step(name string, session *services.SessionController, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	fn()
	if s.Config.DebugJSON {
		raw, _ := json.MarshalIndent(session.View(), "", "  ")
		s.T().Log(string(raw))
	}
}

func (s *BaseSessionSuite) Connected(session *services.SessionController) bool {
	return session.View().Connection == domain.Connected
}

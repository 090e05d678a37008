package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/messagely/internal/middleware"
	"github.com/thereayou/messagely/internal/models"
)

// ---- fakes ----

type fakeUserStore struct {
	registerResp *models.User
	registerErr  error

	authOK  bool
	authErr error

	updateErr   error
	updateCalls []string

	getResp *models.User
	getErr  error

	listResp []models.User
	listErr  error
}

func (f *fakeUserStore) RegisterUser(username, password, firstName, lastName, phone string) (*models.User, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeUserStore) Authenticate(username, password string) (bool, error) {
	return f.authOK, f.authErr
}

func (f *fakeUserStore) UpdateLoginTimestamp(username string) error {
	f.updateCalls = append(f.updateCalls, username)
	return f.updateErr
}

func (f *fakeUserStore) GetUser(username string) (*models.User, error) {
	return f.getResp, f.getErr
}

func (f *fakeUserStore) ListUsers() ([]models.User, error) {
	return f.listResp, f.listErr
}

type fakeMessageStore struct {
	createResp *models.Message
	createErr  error
	createFrom string
	createTo   string
	createBody string

	getResp *models.Message
	getErr  error

	markResp  *models.Message
	markErr   error
	markCalls int

	fromResp []models.Message
	fromErr  error
	toResp   []models.Message
	toErr    error
}

func (f *fakeMessageStore) CreateMessage(from, to, body string) (*models.Message, error) {
	f.createFrom, f.createTo, f.createBody = from, to, body
	return f.createResp, f.createErr
}

func (f *fakeMessageStore) GetMessage(id string) (*models.Message, error) {
	return f.getResp, f.getErr
}

func (f *fakeMessageStore) MarkMessageRead(id string) (*models.Message, error) {
	f.markCalls++
	return f.markResp, f.markErr
}

func (f *fakeMessageStore) MessagesFrom(username string) ([]models.Message, error) {
	return f.fromResp, f.fromErr
}

func (f *fakeMessageStore) MessagesTo(username string) ([]models.Message, error) {
	return f.toResp, f.toErr
}

// ---- helpers ----

// newTestRouter builds a gin engine that pretends username is already
// authenticated, the way the auth middleware would set it.
func newTestRouter(username string, register func(r *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if username != "" {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.UsernameKey, username)
		})
	}
	register(r)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testUser(username string) models.User {
	now := time.Now()
	return models.User{
		Username:     username,
		PasswordHash: "$2a$10$irrelevant",
		FirstName:    username,
		LastName:     "Tester",
		Phone:        "555-0100",
		JoinAt:       now,
		LastLoginAt:  now,
	}
}

func testMessage(from, to string) *models.Message {
	return &models.Message{
		ID:           uuid.New(),
		FromUsername: from,
		ToUsername:   to,
		Body:         "hello",
		SentAt:       time.Now(),
		FromUser:     testUser(from),
		ToUser:       testUser(to),
	}
}

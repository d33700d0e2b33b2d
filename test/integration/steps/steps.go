// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/goal-planner/backend/config"
	"github.com/goal-planner/backend/internal/infra/db"
	"github.com/goal-planner/backend/internal/infra/dependency"
	"github.com/goal-planner/backend/internal/integration/persistence/model"
	"github.com/goal-planner/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	testIssuer    = "goal-planner"
)

// tableOrder lists tables children first for clearing.
var tableOrder = []string{"goals", "future_visions", "categories", "refresh_tokens", "users"}

var tableModels = map[string]any{
	"users":          &model.UserModel{},
	"refresh_tokens": &model.RefreshTokenModel{},
	"categories":     &model.CategoryModel{},
	"future_visions": &model.FutureVisionModel{},
	"goals":          &model.GoalModel{},
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
	saved         map[string]string
}

type response struct {
	status int
	body   any
}

var (
	serverInit     sync.Once
	testServerPort int
	portInit       sync.Once
)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://127.0.0.1:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db:     mock.NewDb(tableModels, tableOrder),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.response = nil
	t.saved = make(map[string]string)

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(mock.NewRedis())
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Server.Port = testServerPort
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.BcryptCost = bcrypt.MinCost
	cfg.Planner.SeedPresets = true
	cfg.Planner.VisionYearsAhead = 10
	return cfg
}

func (t *testContext) startServer() error {
	serverInit.Do(func() {
		cfg := testConfig()
		injector := dependency.NewInjector(cfg, db.NewFromGorm(t.db.DbConn), mock.NewRedis())
		engine := injector.Router.Setup(cfg.Server.Environment)

		server := &http.Server{
			Addr:    fmt.Sprintf("127.0.0.1:%d", testServerPort),
			Handler: engine,
		}
		go func() {
			_ = server.ListenAndServe()
		}()
	})

	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return errors.New("test server did not become healthy")
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	_, err := t.ensureUser(email, password)
	return err
}

func (t *testContext) ensureUser(email, password string) (uuid.UUID, error) {
	var existing model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&existing).Error; err == nil {
		return existing.ID, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := t.db.DbConn.Create(user).Error; err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

// iAmLoggedInAs switches the current user, creating it when missing, and mints tokens directly.
func (t *testContext) iAmLoggedInAs(email string) error {
	userID, err := t.ensureUser(email, "SecurePass123!")
	if err != nil {
		return err
	}
	t.currentUserID = userID

	now := time.Now().UTC()
	t.accessToken, err = signToken(userID, email, "access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.refreshToken, err = signToken(userID, email, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return t.db.DbConn.Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		Token:     t.refreshToken,
		UserID:    userID,
		ExpiresAt: now.Add(7 * 24 * time.Hour),
		CreatedAt: now,
	}).Error
}

func signToken(userID uuid.UUID, email, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": tokenType,
		"jti":        uuid.NewString(),
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        testIssuer,
		"sub":        userID.String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iSaveTheResponseFieldAs(field, name string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	t.saved[name] = fmt.Sprintf("%v", value)
	return nil
}

// replacePlaceholders substitutes {{name}} with saved response values, tokens and relative years.
func (t *testContext) replacePlaceholders(content string) string {
	year := time.Now().Year()
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{current_year}}", strconv.Itoa(year))
	content = strings.ReplaceAll(content, "{{next_year}}", strconv.Itoa(year+1))
	content = strings.ReplaceAll(content, "{{last_year}}", strconv.Itoa(year-1))
	content = strings.ReplaceAll(content, "{{far_year}}", strconv.Itoa(year+11))
	for name, value := range t.saved {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, t.replacePlaceholders(value))
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var decoded map[string]any
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = decoded
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	if actual := fmt.Sprintf("%v", value); actual != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if value := getFieldValue(t.response.body, field); value != nil {
		return fmt.Errorf("field '%s' expected null, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	items, ok := getFieldValue(t.response.body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, t.response.body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) countRows(table string, criteria map[string]any) (int, error) {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return 0, fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Table(table)
	for key, value := range criteria {
		if s, isString := value.(string); isString {
			value = t.replacePlaceholders(s)
		}
		if value == nil {
			query = query.Where(fmt.Sprintf("%s IS NULL", key))
			continue
		}
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil {
		return 0, err
	}
	return entitySlicePtr.Elem().Len(), nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	count, err := t.countRows(table, nil)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	count, err := t.countRows(table, criteria)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}

package bootstrap

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/crm_admin/internal/database/dbtest"
	"github.com/locvowork/crm_admin/internal/domain"
	mid "github.com/locvowork/crm_admin/internal/middleware"
	"github.com/locvowork/crm_admin/pkg/sheetexport"
)

func newTestApp(t *testing.T) (*App, *sql.DB) {
	t.Helper()
	db := dbtest.Open(t)
	app := NewApp()
	require.NoError(t, app.Wire(db, "test"))
	return app, db
}

func do(app *App, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func TestPages(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/", "/test", "/customers/add", "/employees/create"} {
		rec := do(app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html", path)
	}
}

func TestCustomerList_Filters(t *testing.T) {
	app, _ := newTestApp(t)

	rec := do(app, http.MethodGet, "/customers?first_name=Jo&ratings=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<td>John</td>")
	assert.Contains(t, body, "<td>Joan</td>")
	assert.NotContains(t, body, "<td>Mary</td>")
	assert.Contains(t, body, `name="first_name" placeholder="First name" value="Jo"`)
	assert.Contains(t, body, "<td>Globex</td>")
}

func TestCustomerList_FalseIsAFilterValue(t *testing.T) {
	app, _ := newTestApp(t)

	rec := do(app, http.MethodGet, "/customers?first_name=false", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<td>John</td>")

	rec = do(app, http.MethodGet, "/customers?first_name=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<td>John</td>")
}

func TestCustomerAdd_RedirectsToList(t *testing.T) {
	app, _ := newTestApp(t)

	rec := do(app, http.MethodPost, "/customers/add", url.Values{
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"rating":     {"4"},
		"company_id": {"2"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/customers", rec.Header().Get(echo.HeaderLocation))

	rec = do(app, http.MethodGet, "/customers?last_name=Lovelace", nil)
	assert.Contains(t, rec.Body.String(), "<td>Ada</td>")
}

func TestCustomerAdd_EmptyRatingStillListed(t *testing.T) {
	app, _ := newTestApp(t)

	rec := do(app, http.MethodPost, "/customers/add", url.Values{
		"first_name": {"Ada"},
		"last_name":  {"Byron"},
		"rating":     {""},
		"company_id": {"1"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = do(app, http.MethodGet, "/customers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<td>Byron</td>")
	assert.Contains(t, rec.Body.String(), "<td>John</td>")

	rec = do(app, http.MethodGet, "/customers/export", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerAdd_StoreErrorIsGeneric500(t *testing.T) {
	app, _ := newTestApp(t)

	rec := do(app, http.MethodPost, "/customers/add", url.Values{
		"first_name": {"Ada"},
		"company_id": {"99"},
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), genericErrorMessage)
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "foreign key")

	rec = do(app, http.MethodGet, "/customers", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmployeeCreate_RoundTrip(t *testing.T) {
	app, db := newTestApp(t)

	rec := do(app, http.MethodPost, "/employees/create", url.Values{
		"first_name":    {"Ada"},
		"last_name":     {"Lovelace"},
		"department_id": {"1"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/employees", rec.Header().Get(echo.HeaderLocation))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM Employees WHERE first_name = 'Ada' AND last_name = 'Lovelace'").Scan(&count))
	assert.Equal(t, 1, count)

	rec = do(app, http.MethodGet, "/employees", nil)
	assert.Contains(t, rec.Body.String(), "<td>Lovelace</td>")
}

func TestEmployeeDelete_ThenList(t *testing.T) {
	app, _ := newTestApp(t)

	rec := do(app, http.MethodGet, "/employees/1/delete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Grace")

	rec = do(app, http.MethodPost, "/employees/1/delete", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/employees", rec.Header().Get(echo.HeaderLocation))

	rec = do(app, http.MethodGet, "/employees", nil)
	assert.NotContains(t, rec.Body.String(), "Grace")
	assert.Contains(t, rec.Body.String(), "Alan")

	rec = do(app, http.MethodPost, "/employees/1/delete", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeEdit_OverwritesNotMerges(t *testing.T) {
	app, db := newTestApp(t)

	rec := do(app, http.MethodGet, "/employees/2/edit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<option value="2" selected>Research</option>`)

	rec = do(app, http.MethodPost, "/employees/2/edit", url.Values{
		"last_name":     {"Mathison"},
		"department_id": {"1"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	var first, last string
	var dept int64
	require.NoError(t, db.QueryRow("SELECT first_name, last_name, department_id FROM Employees WHERE employee_id = 2").Scan(&first, &last, &dept))
	assert.Equal(t, "", first)
	assert.Equal(t, "Mathison", last)
	assert.Equal(t, int64(1), dept)
}

func TestNotFound_RendersErrorViewAndServerSurvives(t *testing.T) {
	app, _ := newTestApp(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/employees/99/edit"},
		{http.MethodGet, "/employees/99/delete"},
		{http.MethodPost, "/employees/99/edit"},
		{http.MethodGet, "/no/such/page"},
	} {
		rec := do(app, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.path)
		assert.Contains(t, rec.Body.String(), "404 Not Found", tc.path)
	}

	rec := do(app, http.MethodGet, "/employees", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExport(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/customers/export?ratings=5", "/employees/export"} {
		rec := do(app, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, sheetexport.ContentType, rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), ".xlsx")
		assert.NotZero(t, rec.Body.Len())
	}
}

func TestHealthz(t *testing.T) {
	app, db := newTestApp(t)

	rec := do(app, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	require.NoError(t, db.Close())
	rec = do(app, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsAndRequestID(t *testing.T) {
	app, _ := newTestApp(t)

	rec := do(app, http.MethodGet, "/customers", nil)
	assert.NotEmpty(t, rec.Header().Get(mid.HeaderRequestID))
	do(app, http.MethodGet, "/employees/99/edit", nil)

	rec = do(app, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `test_http_requests_total{method="GET",path="/customers",status="200"} 1`)
	assert.Contains(t, body, `test_http_requests_total{method="GET",path="/employees/:employee_id/edit",status="404"} 1`)
}

func TestErrorHandler_FallsBackToPlainText(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	errorHandler(&domain.RepositoryExecutionError{Op: "list customers", Err: assert.AnError}, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "500 Internal Server Error", rec.Body.String())
}

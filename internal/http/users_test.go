package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employeehub/internal/domain"
)

func TestIssueToken(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, "POST", "/jwt", "", map[string]any{"email": "ann@corp.test"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[map[string]string](t, body)
	id, err := env.issuer.Verify(out["token"])
	require.NoError(t, err)
	assert.Equal(t, "ann@corp.test", id.Email)
}

func TestRegisterTwice_SentinelAndNoNewRecord(t *testing.T) {
	env := newTestEnv(t)
	user := map[string]any{"name": "Ann", "email": "ann@corp.test", "role": "employee", "salary": 3200.5}

	resp, body := env.do(t, "POST", "/users", "", user)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decode[map[string]any](t, body)
	assert.Equal(t, true, first["acknowledged"])
	assert.NotEmpty(t, first["insertedId"])
	require.Equal(t, 1, countRows(t, env.db, "users"))

	resp, body = env.do(t, "POST", "/users", "", user)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"user already exists","insertedId":null}`, string(body))
	assert.Equal(t, 1, countRows(t, env.db, "users"))
}

func TestRegister_InvalidBody(t *testing.T) {
	env := newTestEnv(t)
	for _, b := range []map[string]any{
		{"name": "no email"},
		{"email": "not-an-email"},
		{"email": "x@corp.test", "role": "overlord"},
	} {
		resp, _ := env.do(t, "POST", "/users", "", b)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%v", b)
	}
	assert.Zero(t, countRows(t, env.db, "users"))
}

func TestPatchUser_OnlyTargetedFields(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, "POST", "/users", "", map[string]any{
		"name": "Dee", "email": "dee@corp.test", "designation": "Designer", "bankAccountNo": "DE-001",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	id := decode[map[string]any](t, body)["insertedId"].(string)

	resp, body = env.do(t, "PATCH", "/users/"+id, "", map[string]any{"isVerified": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[domain.UpdateResult](t, body)
	assert.EqualValues(t, 1, res.MatchedCount)
	assert.EqualValues(t, 1, res.ModifiedCount)

	u, err := env.deps.Users.Get(id)
	require.NoError(t, err)
	assert.True(t, u.IsVerified)
	assert.Equal(t, "", u.Role)
	assert.Equal(t, "Designer", u.Designation)
	assert.Equal(t, "DE-001", u.BankAccountNo)
	assert.Equal(t, "dee@corp.test", u.Email)

	resp, _ = env.do(t, "PATCH", "/users/"+id, "", map[string]any{"role": "hr"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	u, err = env.deps.Users.Get(id)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHR, u.Role)
	assert.True(t, u.IsVerified)
}

func TestPatchUnknownID_OKWithZeroCounts(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, "PATCH", "/users/6f1c2a8e-3b4d-4c5e-9f70-1a2b3c4d5e6f", "", map[string]any{"isVerified": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[domain.UpdateResult](t, body)
	assert.True(t, res.Acknowledged)
	assert.Zero(t, res.MatchedCount)
	assert.Zero(t, res.ModifiedCount)
}

func TestMalformedIDs(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "boss@corp.test", domain.RoleAdmin)
	tok := env.token(t, "boss@corp.test")

	cases := []struct {
		method, path, token string
		body                any
	}{
		{"GET", "/users/xyz", tok, nil},
		{"PATCH", "/users/xyz", "", map[string]any{"isVerified": true}},
		{"PATCH", "/users/fire/xyz", "", nil},
		{"GET", "/employees/xyz", "", nil},
		{"PATCH", "/employees/xyz", "", map[string]any{"isVerified": true}},
	}
	for _, c := range cases {
		resp, body := env.do(t, c.method, c.path, c.token, c.body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%s %s", c.method, c.path)
		assert.JSONEq(t, `{"message":"malformed id"}`, string(body))
	}
}

func TestGetUser_MissingIsNull(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "boss@corp.test", domain.RoleAdmin)
	resp, body := env.do(t, "GET", "/users/6f1c2a8e-3b4d-4c5e-9f70-1a2b3c4d5e6f", env.token(t, "boss@corp.test"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", string(body))
}

func TestFire_ClearsEmailKeepsRecord(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "boss@corp.test", domain.RoleAdmin)
	id := env.seedUser(t, "fired@corp.test", domain.RoleEmployee)

	resp, body := env.do(t, "PATCH", "/users/fire/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, decode[domain.UpdateResult](t, body).ModifiedCount)

	resp, body = env.do(t, "GET", "/users/"+id, env.token(t, "boss@corp.test"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	u := decode[map[string]any](t, body)
	assert.Equal(t, "", u["email"])
	assert.Equal(t, true, u["isFired"])
	assert.Equal(t, 2, countRows(t, env.db, "users"))

	// the old email is free again
	resp, body = env.do(t, "POST", "/users", "", map[string]any{"email": "fired@corp.test"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, string(body), "already exists")
}

func TestEmployeesRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "hr@corp.test", domain.RoleHR)
	empID := env.seedUser(t, "emp@corp.test", domain.RoleEmployee)
	hrID, err := env.deps.Users.ByEmail("hr@corp.test")
	require.NoError(t, err)

	resp, body := env.do(t, "GET", "/employees", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]map[string]any](t, body)
	require.Len(t, list, 1)
	assert.Equal(t, "emp@corp.test", list[0]["email"])

	_, body = env.do(t, "GET", "/employees/"+hrID.ID, "", nil)
	assert.Equal(t, "null", string(body))

	resp, _ = env.do(t, "PATCH", "/employees/"+empID, "", map[string]any{"isVerified": true, "role": "admin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	u, err := env.deps.Users.Get(empID)
	require.NoError(t, err)
	assert.True(t, u.IsVerified)
	assert.Equal(t, domain.RoleEmployee, u.Role)

	resp, _ = env.do(t, "PATCH", "/employees/"+empID, "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTasks(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "emp@corp.test", domain.RoleEmployee)

	resp, body := env.do(t, "POST", "/tasks", env.token(t, "emp@corp.test"), map[string]any{"task": "Support", "hoursWorked": 4})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = env.do(t, "GET", "/tasks", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tasks := decode[[]map[string]any](t, body)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Support", tasks[0]["task"])
	assert.Equal(t, "emp@corp.test", tasks[0]["email"])
	assert.NotEmpty(t, tasks[0]["_id"])
}

func TestLivenessAndHealth(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, "GET", "/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "employee management app is running...", string(body))

	resp, body = env.do(t, "GET", "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestRoleIsStoredTrimmed(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, "POST", "/users", "", map[string]any{"email": "pad@corp.test", "role": " admin "})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	id := decode[map[string]any](t, body)["insertedId"].(string)

	u, err := env.deps.Users.Get(id)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	resp, body = env.do(t, "PATCH", "/users/"+id, "", map[string]any{"role": "hr\t"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	u, err = env.deps.Users.Get(id)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHR, u.Role)
}

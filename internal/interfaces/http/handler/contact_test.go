package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_Check_NewContact(t *testing.T) {
	engine := newTestEngine()

	w := doJSON(t, engine, http.MethodGet, "/api/contacts/check?phone=%2B998901234567", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["isNewContact"])
	assert.Equal(t, "+998901234567", body["phoneNumber"])
}

func TestContactHandler_Check_MissingPhone(t *testing.T) {
	engine := newTestEngine()

	w := doJSON(t, engine, http.MethodGet, "/api/contacts/check", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Phone number required", body["error"])
}

func TestContactHandler_SaveThenCheck(t *testing.T) {
	engine := newTestEngine()

	w := doJSON(t, engine, http.MethodPost, "/api/contacts", map[string]any{
		"phoneNumber": "+998901234567",
		"firstName":   "Aziz",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["isNew"])

	contact := body["contact"].(map[string]any)
	assert.Equal(t, "+998901234567", contact["phoneNumber"])
	assert.Equal(t, "Aziz", contact["firstName"])
	assert.Nil(t, contact["lastName"])
	assert.NotEmpty(t, contact["createdAt"])

	w = doJSON(t, engine, http.MethodGet, "/api/contacts/check?phone=%2B998901234567", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["isNewContact"])
}

func TestContactHandler_Save_Resave(t *testing.T) {
	engine := newTestEngine()

	w := doJSON(t, engine, http.MethodPost, "/api/contacts", map[string]any{
		"phoneNumber": "+998901234567",
		"firstName":   "Aziz",
		"lastName":    "Rakhimov",
	})
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeBody(t, w)["contact"].(map[string]any)

	w = doJSON(t, engine, http.MethodPost, "/api/contacts", map[string]any{
		"phoneNumber": "+998901234567",
		"firstName":   "Jasur",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["isNew"])

	second := body["contact"].(map[string]any)
	assert.Equal(t, first["createdAt"], second["createdAt"], "createdAt must survive re-registration")
	assert.Equal(t, "Jasur", second["firstName"])
	assert.Nil(t, second["lastName"], "names are replaced, not merged")
}

func TestContactHandler_Save_MissingPhone(t *testing.T) {
	engine := newTestEngine()

	w := doJSON(t, engine, http.MethodPost, "/api/contacts", map[string]any{
		"firstName": "Aziz",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Phone number required", decodeBody(t, w)["error"])
}

func TestContactHandler_Login(t *testing.T) {
	engine := newTestEngine()

	doJSON(t, engine, http.MethodPost, "/api/contacts", map[string]any{
		"phoneNumber": "+998901234567",
	})

	w := doJSON(t, engine, http.MethodPost, "/api/contacts/login", map[string]any{
		"phoneNumber": "+998901234567",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["contact"])
}

func TestContactHandler_Login_NotFound(t *testing.T) {
	engine := newTestEngine()

	w := doJSON(t, engine, http.MethodPost, "/api/contacts/login", map[string]any{
		"phoneNumber": "+998900000000",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Contact not found", body["error"])
	assert.Equal(t, "+998900000000", body["phoneNumber"])
}

func TestContactHandler_GetAndList(t *testing.T) {
	engine := newTestEngine()

	doJSON(t, engine, http.MethodPost, "/api/contacts", map[string]any{
		"phoneNumber": "+998901234567",
		"firstName":   "Aziz",
	})

	w := doJSON(t, engine, http.MethodGet, "/api/contacts/%2B998901234567", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Aziz", decodeBody(t, w)["firstName"])

	w = doJSON(t, engine, http.MethodGet, "/api/contacts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["total"])
	assert.Len(t, body["contacts"], 1)
}

func TestContactHandler_Get_NotFound(t *testing.T) {
	engine := newTestEngine()

	w := doJSON(t, engine, http.MethodGet, "/api/contacts/%2B998900000000", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Contact not found", body["error"])
	assert.Equal(t, "+998900000000", body["phoneNumber"])
}

func TestContactHandler_Update(t *testing.T) {
	engine := newTestEngine()

	doJSON(t, engine, http.MethodPost, "/api/contacts", map[string]any{
		"phoneNumber": "+998901234567",
		"firstName":   "Aziz",
		"lastName":    "Rakhimov",
	})

	w := doJSON(t, engine, http.MethodPut, "/api/contacts/%2B998901234567", map[string]any{
		"firstName": "Jasur",
	})
	require.Equal(t, http.StatusOK, w.Code)

	contact := decodeBody(t, w)["contact"].(map[string]any)
	assert.Equal(t, "Jasur", contact["firstName"])
	assert.Equal(t, "Rakhimov", contact["lastName"], "omitted fields keep their value")
}

func TestContactHandler_Delete(t *testing.T) {
	engine := newTestEngine()

	doJSON(t, engine, http.MethodPost, "/api/contacts", map[string]any{
		"phoneNumber": "+998901234567",
	})

	w := doJSON(t, engine, http.MethodDelete, "/api/contacts/%2B998901234567", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Contact deleted", body["message"])
	assert.Equal(t, "+998901234567", body["phoneNumber"])

	w = doJSON(t, engine, http.MethodDelete, "/api/contacts/%2B998901234567", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Contact not found", decodeBody(t, w)["error"])
}

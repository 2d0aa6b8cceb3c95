package directory

import (
	"testing"

	"github.com/andreaprogra/rapport-vocal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ParseGviz ────────────────────────────────────────────────────────────────

func TestParseGviz_StripsJSONPEnvelope(t *testing.T) {
	data := []byte(`/*O_o*/
google.visualization.Query.setResponse({"table":{"rows":[
{"c":[{"v":"username"},{"v":"password"},{"v":"nom"},{"v":"role"},{"v":"statut"}]},
{"c":[{"v":"marie"},{"v":"secret"},{"v":"Marie Blanc"},{"v":"commercial"},{"v":"actif"}]}
]}});`)

	users, err := ParseGviz(data)
	require.NoError(t, err)
	require.Len(t, users, 1)

	assert.Equal(t, "marie", users[0].Username)
	assert.Equal(t, "Marie Blanc", users[0].DisplayName)
	assert.True(t, users[0].Active)
}

func TestParseGviz_NoJSONBody(t *testing.T) {
	_, err := ParseGviz([]byte("google.visualization.Query.setResponse();"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON body")
}

func TestParseGviz_MalformedJSON(t *testing.T) {
	_, err := ParseGviz([]byte(`{"table":{"rows":[`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode gviz table")
}

func TestParseGviz_NumericCellUsesFormattedValue(t *testing.T) {
	data := []byte(`{"table":{"rows":[
{"c":[{"v":"username"},{"v":"password"},{"v":"nom"},{"v":"role"},{"v":"statut"}]},
{"c":[{"v":1234.0,"f":"1234"},{"v":"pw"},{"v":"N"},{"v":"commercial"},{"v":"actif"}]}
]}}`)

	users, err := ParseGviz(data)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "1234", users[0].Username)
}

func TestParseGviz_NullCellFallsBackToFormatted(t *testing.T) {
	data := []byte(`{"table":{"rows":[
{"c":[{"v":"username"},{"v":"password"},{"v":"nom"},{"v":"role"},{"v":"statut"}]},
{"c":[{"v":null,"f":"paul"},{"v":"pw"},{"v":"Paul"},{"v":"commercial"},{"v":"actif"}]}
]}}`)

	users, err := ParseGviz(data)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "paul", users[0].Username)
}

// ── ParseCSV ─────────────────────────────────────────────────────────────────

func TestParseCSV_SkipsHeaderRow(t *testing.T) {
	data := []byte("username,password,nom,role,statut\nmarie,secret,Marie Blanc,commercial,actif\n")

	users, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "marie", users[0].Username)
}

func TestParseCSV_SkipsHeaderEchoRows(t *testing.T) {
	data := []byte("a,b,c,d,e\n" +
		"USERNAME,x,x,x,x\n" +
		"x,Password,x,x,x\n" +
		"x,x,Nom,x,x\n" +
		"marie,secret,Marie Blanc,commercial,actif\n")

	users, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "marie", users[0].Username)
}

func TestParseCSV_SkipsRowsWithoutCredentials(t *testing.T) {
	data := []byte("username,password,nom,role,statut\n" +
		",secret,Sans Identifiant,commercial,actif\n" +
		"paul,,Sans MotDePasse,commercial,actif\n" +
		"marie,secret,Marie Blanc,commercial,actif\n")

	users, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "marie", users[0].Username)
}

func TestParseCSV_SkipsShortRows(t *testing.T) {
	data := []byte("username,password,nom,role,statut\n" +
		"paul,secret\n" +
		"marie,secret,Marie Blanc,commercial,actif\n")

	users, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestParseCSV_DefaultsForEmptyOptionalFields(t *testing.T) {
	data := []byte("username,password,nom,role,statut\n" +
		"marie,secret,,,\n")

	users, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, users, 1)

	assert.Equal(t, "Nom non défini", users[0].DisplayName)
	assert.Equal(t, models.RoleSalesRep, users[0].Role)
	assert.Equal(t, "inactif", users[0].Status)
	assert.False(t, users[0].Active)
}

func TestParseCSV_IDFollowsValidRowPosition(t *testing.T) {
	data := []byte("username,password,nom,role,statut\n" +
		",skip,Skipped,commercial,actif\n" +
		"marie,secret,Marie Blanc,commercial,actif\n" +
		"paul,secret,Paul Noir,manager,inactif\n")

	users, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, int64(2), users[1].ID)
}

func TestParseCSV_ExtendedColumns(t *testing.T) {
	data := []byte("username,password,nom,role,statut,dateCreation,deviceId,derniereConnexion\n" +
		"marie,secret,Marie Blanc,commercial,actif,2025-01-02,dev-42,2025-06-01T10:30:00Z\n")

	users, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, users, 1)

	assert.Equal(t, "2025-01-02", users[0].CreatedAt)
	assert.Equal(t, "dev-42", users[0].DeviceID)
	require.NotNil(t, users[0].LastSeenAt)
	assert.Equal(t, 2025, users[0].LastSeenAt.Year())
}

func TestParseCSV_InvalidLastSeenIgnored(t *testing.T) {
	data := []byte("username,password,nom,role,statut,dateCreation,deviceId,derniereConnexion\n" +
		"marie,secret,Marie Blanc,commercial,actif,,,pas-une-date\n")

	users, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Nil(t, users[0].LastSeenAt)
}

// ── normalizeCell ────────────────────────────────────────────────────────────

func TestNormalizeCell_StripsInvisibleCharacters(t *testing.T) {
	assert.Equal(t, "actif", normalizeCell("\uFEFFActif"))
	assert.Equal(t, "actif", normalizeCell("ac\u200Btif"))
	assert.Equal(t, "actif", normalizeCell("actif "))
	assert.Equal(t, "actif", normalizeCell("  ACTIF  "))
}

func TestNormalizeCell_StripsQuotes(t *testing.T) {
	assert.Equal(t, "actif", normalizeCell(`"actif"`))
	assert.Equal(t, "actif", normalizeCell("'actif'"))
	assert.Equal(t, "actif", normalizeCell("“actif”"))
	assert.Equal(t, "actif", normalizeCell("‘actif’"))
}

func TestParseCSV_StatusWithBOMStillActive(t *testing.T) {
	data := []byte("username,password,nom,role,statut\n" +
		"marie,secret,Marie Blanc,commercial,\uFEFFActif \n")

	users, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].Active)
}

// ── DefaultUsers ─────────────────────────────────────────────────────────────

func TestDefaultUsers_KnownAccounts(t *testing.T) {
	users := DefaultUsers()
	require.Len(t, users, 2)

	assert.Equal(t, "commercial1", users[0].Username)
	assert.False(t, users[0].Active)

	assert.Equal(t, "andreac", users[1].Username)
	assert.True(t, users[1].Active)
	assert.Equal(t, "Andrea Ciechels (défaut)", users[1].DisplayName)
}

//go:build e2e

package housekeeping_test

import (
	"net/http"
	"testing"

	"hostel-admin/internal/domain/user"
	"hostel-admin/internal/handler/dto/request"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/tests/common/authtest"
	"hostel-admin/tests/common/dbtest"
	"hostel-admin/tests/common/httptest"
	"hostel-admin/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type housekeepingSuite struct {
	e2e.SharedSuite
	token  string
	roomID uuid.UUID
}

func TestHousekeepingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(housekeepingSuite))
}

func (s *housekeepingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "maid@hostel.test", user.RoleHousekeeping)
	s.roomID = dbtest.CreateTestRoom(s.T(), s.DB, "201")
}

func (s *housekeepingSuite) board(date string) *resdto.BoardResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/housekeeping?date="+date, nil, s.token)
	var board resdto.BoardResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &board)
	return &board
}

func (s *housekeepingSuite) row(b *resdto.BoardResponse) *resdto.BoardRowResponse {
	for _, r := range b.Rows {
		if r.RoomID == s.roomID {
			return r
		}
	}
	s.T().Fatalf("room %s missing from board", s.roomID)
	return nil
}

func (s *housekeepingSuite) TestUpsert() {
	s.Run("second write replaces the first", func() {
		path := "/api/housekeeping/" + s.roomID.String() + "/2024-07-12"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, path,
			request.HousekeepingRequest{Status: "cleaning"}, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, path,
			request.HousekeepingRequest{Status: "ready", Notes: "towels restocked"}, s.token)
		var entry resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &entry)
		require.Equal(s.T(), "ready", entry.Status)
		require.NotNil(s.T(), entry.UpdatedBy)

		var count int
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM housekeeping_entries WHERE room_id = $1 AND date = '2024-07-12'", s.roomID).Scan(&count)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, count)

		row := s.row(s.board("2024-07-12"))
		require.True(s.T(), row.Recorded)
		require.Equal(s.T(), "ready", row.Status)
		require.Equal(s.T(), "towels restocked", row.Notes)
	})

	s.Run("unknown room", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/housekeeping/"+uuid.NewString()+"/2024-07-12",
			request.HousekeepingRequest{Status: "ready"}, s.token)
		require.Equal(s.T(), http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *housekeepingSuite) TestBoardDefaults() {
	s.Run("departure day defaults to dirty", func() {
		guestID := dbtest.CreateTestGuest(s.T(), s.DB, "Luis Paredes", "luis@example.com")
		_, err := s.DB.Exec(s.T().Context(), `
			INSERT INTO reservations (id, code, room_id, guest_id, check_in, check_out, status, adults, total_price)
			VALUES ($1, 'R-000001', $2, $3, '2024-07-10', '2024-07-12', 'checked_in', 1, 180)`,
			uuid.New(), s.roomID, guestID)
		require.NoError(s.T(), err)

		occupied := s.row(s.board("2024-07-11"))
		require.True(s.T(), occupied.Occupied)
		require.False(s.T(), occupied.Recorded)

		departure := s.row(s.board("2024-07-12"))
		require.True(s.T(), departure.DepartsToday)
		require.False(s.T(), departure.Occupied)
		require.Equal(s.T(), "dirty", departure.Status)

		quiet := s.row(s.board("2024-07-20"))
		require.Equal(s.T(), "ready", quiet.Status)
	})
}

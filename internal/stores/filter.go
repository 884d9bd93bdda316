package stores

import (
	"strings"

	"request-analytics/internal/models"
)

// buildLogFilter translates FilterParams plus the owning key into a WHERE
// clause and its arguments. Owner equality is always the first predicate;
// absent optional fields impose no constraint. Date bounds are widened to
// day-start/day-end so a date-granular filter covers whole days.
func buildLogFilter(apiKeyID int64, f *models.FilterParams) (string, []any) {
	where := []string{"api_key_id = ?"}
	args := []any{apiKeyID}

	if f == nil {
		return " WHERE " + where[0], args
	}

	if f.StartDate != nil {
		where = append(where, "created_at >= ?")
		args = append(args, f.StartDate.UTC().Format("2006-01-02")+" 00:00:00")
	}
	if f.EndDate != nil {
		where = append(where, "created_at <= ?")
		args = append(args, f.EndDate.UTC().Format("2006-01-02")+" 23:59:59")
	}
	if f.Method != nil {
		where = append(where, "method = ?")
		args = append(args, *f.Method)
	}
	if f.StatusCode != nil {
		where = append(where, "status_code = ?")
		args = append(args, *f.StatusCode)
	}
	if f.IP != nil {
		where = append(where, "ip = ?")
		args = append(args, *f.IP)
	}
	if f.Endpoint != nil {
		where = append(where, "endpoint LIKE ?")
		args = append(args, "%"+*f.Endpoint+"%")
	}
	if f.ProcessTimeMin != nil {
		where = append(where, "process_time >= ?")
		args = append(args, *f.ProcessTimeMin)
	}
	if f.ProcessTimeMax != nil {
		where = append(where, "process_time <= ?")
		args = append(args, *f.ProcessTimeMax)
	}

	return " WHERE " + strings.Join(where, " AND "), args
}

// orderColumn maps an already-validated order_by value onto a column name.
// The allowlist guards against injection even if validation is bypassed.
func orderColumn(orderBy string) string {
	allowed := map[string]bool{
		"id": true, "created_at": true, "method": true, "endpoint": true,
		"ip": true, "process_time": true, "status_code": true,
	}
	if allowed[orderBy] {
		return orderBy
	}
	return "id"
}

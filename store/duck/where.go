package duck

import (
	"fmt"
	"strconv"
	"strings"

	nt "gridmenu/entity"
)

// whereClause converts a Filter to SQL WHERE clause
func whereClause(filter nt.Filter) string {

	clause := filterExpr(filter)
	if clause == "" {
		return ""
	}
	return "WHERE " + clause
}

// filterExpr recursively builds filter expression (without WHERE prefix)
func filterExpr(f nt.Filter) string {
	switch f.Op {
	case nt.Eq:
		return fmt.Sprintf("%s = %s", ident(f.Field), quote(f.Value))
	case nt.Ne:
		return fmt.Sprintf("%s != %s", ident(f.Field), quote(f.Value))
	case nt.Gt:
		return fmt.Sprintf("%s > %s", ident(f.Field), literal(f.Value))
	case nt.Gte:
		return fmt.Sprintf("%s >= %s", ident(f.Field), literal(f.Value))
	case nt.Lt:
		return fmt.Sprintf("%s < %s", ident(f.Field), literal(f.Value))
	case nt.Lte:
		return fmt.Sprintf("%s <= %s", ident(f.Field), literal(f.Value))
	case nt.Contains:
		pattern := "%" + escape(likeEscaper.Replace(fmt.Sprintf("%v", f.Value))) + "%"
		return fmt.Sprintf(`CAST(%s AS VARCHAR) ILIKE '%s' ESCAPE '\'`, ident(f.Field), pattern)
	case nt.Match:
		return fmt.Sprintf("regexp_matches(CAST(%s AS VARCHAR), %s)", ident(f.Field), quote(f.Value))
	case nt.And:
		return join(f.Children, " AND ")
	case nt.Or:
		return join(f.Children, " OR ")
	case nt.Not:
		if len(f.Children) > 0 {
			if expr := filterExpr(f.Children[0]); expr != "" {
				return "NOT (" + expr + ")"
			}
		}
		return ""
	default:
		return ""
	}
}

func join(children []nt.Filter, sep string) string {

	var clauses []string
	for _, child := range children {
		if expr := filterExpr(child); expr != "" {
			clauses = append(clauses, expr)
		}
	}

	switch len(clauses) {
	case 0:
		return ""
	case 1:
		return clauses[0]
	}
	return "(" + strings.Join(clauses, sep) + ")"
}

// literal renders numbers bare and anything else quoted
func literal(val any) string {
	switch v := val.(type) {
	case int, int32, int64, float32, float64:
		return fmt.Sprintf("%v", v)
	case string:
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return strings.TrimSpace(v)
		}
	}
	return quote(val)
}

func quote(val any) string {
	return "'" + escape(fmt.Sprintf("%v", val)) + "'"
}

// likeEscaper makes like wildcards literal
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escape(in string) string {
	return strings.ReplaceAll(in, "'", "''")
}

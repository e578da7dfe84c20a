package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type QueryBuildResult struct {
	Query string
	Args  []any
}

// BuildDynamicUpdateQuery builds "UPDATE table SET ... WHERE whereField = $n" from
// the fields present in updateData. Fields outside allowedFields are rejected.
// SET clauses are emitted in field-name order so the generated SQL is stable.
func BuildDynamicUpdateQuery(
	tableName string,
	updateData map[string]any,
	allowedFields map[string]bool,
	whereField string,
	whereValue any,
	autoAddUpdatedAt bool,
) (*QueryBuildResult, error) {
	fields := make([]string, 0, len(updateData))
	for field := range updateData {
		if !allowedFields[field] {
			return nil, fmt.Errorf("field %s is not allowed to be updated", field)
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)

	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	setClauses := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	argPosition := 1

	for _, field := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field, argPosition))
		args = append(args, updateData[field])
		argPosition++
	}

	if autoAddUpdatedAt {
		if _, ok := updateData["updated_at"]; !ok {
			setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argPosition))
			args = append(args, time.Now())
			argPosition++
		}
	}

	args = append(args, whereValue)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d",
		tableName,
		strings.Join(setClauses, ", "),
		whereField,
		argPosition,
	)

	return &QueryBuildResult{Query: query, Args: args}, nil
}

type Condition struct {
	Field    string // column name or expression
	Operator string // =, ILIKE, IN
	Value    any
}

type QueryBuilder struct {
	TemplateQuery string
	Conditions    []Condition // joined with AND
	OrderBy       []string    // e.g. "name ASC"
	Limit         int
	Offset        int
}

// BuildQueryDynamicFilter renders the template with a parameterised WHERE,
// ORDER BY and LIMIT/OFFSET.
func (qb *QueryBuilder) BuildQueryDynamicFilter() (string, []any, error) {
	if qb.TemplateQuery == "" {
		return "", nil, fmt.Errorf("template query is required")
	}

	query := qb.TemplateQuery
	args := []any{}
	paramIndex := 1

	if len(qb.Conditions) > 0 {
		whereParts := make([]string, 0, len(qb.Conditions))

		for _, cond := range qb.Conditions {
			switch op := strings.ToUpper(cond.Operator); op {
			case "=", "ILIKE":
				whereParts = append(whereParts, fmt.Sprintf("%s %s $%d", cond.Field, op, paramIndex))
				args = append(args, cond.Value)
				paramIndex++

			case "IN":
				values, ok := cond.Value.([]string)
				if !ok || len(values) == 0 {
					return "", nil, fmt.Errorf("IN operator requires at least one value for field %s", cond.Field)
				}
				placeholders := make([]string, 0, len(values))
				for _, val := range values {
					placeholders = append(placeholders, fmt.Sprintf("$%d", paramIndex))
					args = append(args, val)
					paramIndex++
				}
				whereParts = append(whereParts, fmt.Sprintf("%s IN (%s)", cond.Field, strings.Join(placeholders, ", ")))

			default:
				return "", nil, fmt.Errorf("unsupported operator: %s", cond.Operator)
			}
		}

		query += " WHERE " + strings.Join(whereParts, " AND ")
	}

	if len(qb.OrderBy) > 0 {
		validOrders := []string{}
		for _, order := range qb.OrderBy {
			parts := strings.Fields(order)
			switch len(parts) {
			case 0:
				continue
			case 1:
				validOrders = append(validOrders, parts[0]+" ASC")
			case 2:
				dir := strings.ToUpper(parts[1])
				if dir != "ASC" && dir != "DESC" {
					return "", nil, fmt.Errorf("invalid order direction: %s (must be ASC or DESC)", parts[1])
				}
				validOrders = append(validOrders, parts[0]+" "+dir)
			default:
				return "", nil, fmt.Errorf("invalid order format: %s", order)
			}
		}
		if len(validOrders) > 0 {
			query += " ORDER BY " + strings.Join(validOrders, ", ")
		}
	}

	if qb.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", paramIndex)
		args = append(args, qb.Limit)
		paramIndex++
	}
	if qb.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", paramIndex)
		args = append(args, qb.Offset)
	}

	return query, args, nil
}

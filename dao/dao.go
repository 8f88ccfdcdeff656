// api/dao/dao.go
package dao

import (
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/taskhive/taskhive/api/model"
)

// findRef runs a read transaction that projects a single entity into the
// minimal model.EntityRef the authorization engine consumes. The query must
// RETURN columns named after EntityRef fields (id, organizationID,
// departmentID, createdBy, assignees, watchers, mentions, recipients,
// readBy, isDeleted); missing columns are simply left zero.
//
// A query with no rows yields (nil, nil): absence is a resolver concern,
// not a store error.
func findRef(driver neo4j.Driver, query string, params map[string]interface{}) (*model.EntityRef, error) {
	session := driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		res, err := tx.Run(query, params)
		if err != nil {
			return nil, err
		}
		if res.Next() {
			return refFromRecord(res.Record()), nil
		}
		return nil, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to project entity: %w", err)
	}
	if result == nil {
		return nil, nil
	}
	return result.(*model.EntityRef), nil
}

func refFromRecord(record *neo4j.Record) *model.EntityRef {
	ref := &model.EntityRef{}
	ref.ID = stringValue(record, "id")
	ref.OrganizationID = stringValue(record, "organizationID")
	ref.DepartmentID = stringValue(record, "departmentID")
	ref.CreatedBy = stringValue(record, "createdBy")
	ref.Assignees = stringSliceValue(record, "assignees")
	ref.Watchers = stringSliceValue(record, "watchers")
	ref.Mentions = stringSliceValue(record, "mentions")
	ref.Recipients = stringSliceValue(record, "recipients")
	ref.ReadBy = stringSliceValue(record, "readBy")
	ref.IsDeleted = boolValue(record, "isDeleted")
	return ref
}

func stringValue(record *neo4j.Record, key string) string {
	v, ok := record.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func stringSliceValue(record *neo4j.Record, key string) []string {
	v, ok := record.Get(key)
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func boolValue(record *neo4j.Record, key string) bool {
	v, ok := record.Get(key)
	if !ok || v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}

func stringProp(node neo4j.Node, key string) string {
	v, ok := node.Props[key]
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func stringSliceProp(node neo4j.Node, key string) []string {
	v, ok := node.Props[key]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func boolProp(node neo4j.Node, key string) bool {
	v, ok := node.Props[key]
	if !ok || v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}

package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// extractID renders the inserted _id as a string. MongoDB generates
// ObjectIDs; anything else is formatted as-is.
func extractID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

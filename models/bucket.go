package models

import (
	"context"
	"database/sql/driver"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// Bucket is one named collection serialized as JSON. SQL backends keep one row per bucket.
type Bucket struct {
	Key       string      `gorm:"primaryKey;size:128" json:"key"`
	Value     BucketValue `gorm:"column:value" json:"value"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (Bucket) TableName() string { return "buckets" }

// BucketValue is datatypes.JSON stored in a text column on sqlite. A JSON
// column there has numeric affinity and turns a bare `1` into an integer.
type BucketValue datatypes.JSON

func (v BucketValue) Value() (driver.Value, error) {
	return datatypes.JSON(v).Value()
}

// Scan also accepts numbers written by databases created with a JSON column.
func (v *BucketValue) Scan(src interface{}) error {
	switch n := src.(type) {
	case int64:
		src = strconv.FormatInt(n, 10)
	case float64:
		src = strconv.FormatFloat(n, 'f', -1, 64)
	case bool:
		src = strconv.FormatBool(n)
	}
	return (*datatypes.JSON)(v).Scan(src)
}

func (v BucketValue) MarshalJSON() ([]byte, error) {
	return datatypes.JSON(v).MarshalJSON()
}

func (v *BucketValue) UnmarshalJSON(b []byte) error {
	return (*datatypes.JSON)(v).UnmarshalJSON(b)
}

func (BucketValue) GormDataType() string { return "json" }

func (BucketValue) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}
	return datatypes.JSON{}.GormDBDataType(db, field)
}

func (v BucketValue) GormValue(ctx context.Context, db *gorm.DB) clause.Expr {
	return datatypes.JSON(v).GormValue(ctx, db)
}

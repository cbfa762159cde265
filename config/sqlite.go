/* ==================================================================================== *\
     sqlite.go

     SqliteLoader: an alternate descriptor source for zone catalogs kept in
     a database instead of a directory of JSON files. Grounded on
     readers.go's SqliteReader/ReadSqlite (bdrmapit annotation table).
\* ==================================================================================== */

package config

import (
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/Emeline-1/zonefield/zone"
)

// SqliteLoader reads descriptors from a zones table, ordered by
// original_id, so the returned slice is already in priority order.
type SqliteLoader struct {
	filename string
}

// NewSqliteLoader builds a loader pointed at a sqlite3 database file.
func NewSqliteLoader(filename string) *SqliteLoader {
	return &SqliteLoader{filename: filename}
}

// Load opens the database, reads every row of the zones table, and
// closes it again. The table is expected to carry the columns:
// name, type, original_id, pos1 (JSON array of ints), pos2 (JSON array
// of ints), payload (JSON object, nullable).
func (l *SqliteLoader) Load() ([]zone.Descriptor, error) {
	database, err := sql.Open("sqlite3", l.filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", l.filename)
	}
	defer database.Close()

	rows, err := database.Query("SELECT name, type, pos1, pos2, payload FROM zones ORDER BY original_id ASC")
	if err != nil {
		return nil, errors.Wrap(err, "querying zones table")
	}
	defer rows.Close()

	var descriptors []zone.Descriptor
	for rows.Next() {
		var name, ztype, pos1JSON, pos2JSON string
		var payloadJSON sql.NullString

		if err := rows.Scan(&name, &ztype, &pos1JSON, &pos2JSON, &payloadJSON); err != nil {
			return nil, errors.Wrap(err, "scanning zones row")
		}

		var pos1, pos2 []int
		if err := json.Unmarshal([]byte(pos1JSON), &pos1); err != nil {
			return nil, errors.Wrapf(err, "parsing pos1 for zone %q", name)
		}
		if err := json.Unmarshal([]byte(pos2JSON), &pos2); err != nil {
			return nil, errors.Wrapf(err, "parsing pos2 for zone %q", name)
		}

		var payload map[string]interface{}
		if payloadJSON.Valid && payloadJSON.String != "" {
			if err := json.Unmarshal([]byte(payloadJSON.String), &payload); err != nil {
				return nil, errors.Wrapf(err, "parsing payload for zone %q", name)
			}
		}

		descriptors = append(descriptors, zone.Descriptor{
			Name:    name,
			Type:    ztype,
			Pos1:    pos1,
			Pos2:    pos2,
			Payload: payload,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating zones rows")
	}

	return descriptors, nil
}

package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var date string

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&date,
		&task.Completed,
		&task.Synced,
	)
	if err != nil {
		return nil, err
	}

	task.Date, err = ParseTimeFromDB(date)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanTombstone scans a single tombstone from a database row
func ScanTombstone(scanner Scanner) (*Tombstone, error) {
	tombstone := &Tombstone{}
	var deletedAt string

	err := scanner.Scan(&tombstone.TaskID, &deletedAt)
	if err != nil {
		return nil, err
	}

	tombstone.DeletedAt, err = ParseTimeFromDB(deletedAt)
	if err != nil {
		return nil, err
	}

	return tombstone, nil
}

// ScanTombstones scans multiple tombstones from database rows
func ScanTombstones(rows Rows) ([]*Tombstone, error) {
	var tombstones []*Tombstone
	for rows.Next() {
		tombstone, err := ScanTombstone(rows)
		if err != nil {
			return nil, err
		}
		tombstones = append(tombstones, tombstone)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tombstones, nil
}

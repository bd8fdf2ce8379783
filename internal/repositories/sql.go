package repositories

const createStudentsTable = `
	CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		registration_number TEXT NOT NULL UNIQUE,
		course TEXT NOT NULL,
		grades TEXT NOT NULL
	)
`

const insertStudent = `
	INSERT INTO students (name, registration_number, course, grades) VALUES (?, ?, ?, ?)
`

const selectStudent = `
	SELECT id, name, registration_number, course, grades
	FROM students
	WHERE id = ?
`

const selectAllStudents = `
	SELECT id, name, registration_number, course, grades
	FROM students
	ORDER BY id ASC
`

const updateStudent = `
	UPDATE students
	SET name = ?, registration_number = ?, course = ?, grades = ?
	WHERE id = ?
`

const deleteStudent = `
	DELETE FROM students
	WHERE id = ?
`

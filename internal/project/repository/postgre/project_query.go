package postgre

const (
	queryGetProject = `
		SELECT id, name, manager_id
		FROM projects
		WHERE id = $1`

	queryListProjects = `
		SELECT id, name, manager_id
		FROM projects
		WHERE ($1 = '' OR manager_id = $1)
		ORDER BY name
		LIMIT $2 OFFSET $3`

	queryListPhases = `
		SELECT id, name, status, start_date, end_date, responsible_id
		FROM phases
		WHERE project_id = $1
		ORDER BY ord, id`

	queryListTasks = `
		SELECT t.id, t.phase_id, t.name, t.status, t.assigned_to, t.due_date,
		       t.start_date, t.created_at, t.priority, t.tags, t.is_milestone
		FROM tasks t
		JOIN phases p ON p.id = t.phase_id
		WHERE p.project_id = $1
		ORDER BY t.ord, t.id`

	queryListSubtasks = `
		SELECT s.id, s.task_id, s.name, s.status, s.assigned_to, s.due_date
		FROM subtasks s
		JOIN tasks t ON t.id = s.task_id
		JOIN phases p ON p.id = t.phase_id
		WHERE p.project_id = $1
		ORDER BY s.ord, s.id`
)

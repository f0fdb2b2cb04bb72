package repositories

var queryAuditRecord = `
	INSERT INTO audit_log(
		"id", "operator", "action", "targetType", "targetId", "before", "after", "createdAt"
	)
	VALUES(
		$1, $2, $3, $4, $5, $6, $7, NOW()
	);
`

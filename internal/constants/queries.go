package constants

const (
	InsertUser = `
	INSERT INTO users (id, username, hashed_password, first_name, last_name, date_of_birth, bio, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	GetUserById = `
	SELECT * FROM users WHERE id = $1
	`

	GetUserByUsername = `
	SELECT * FROM users WHERE username = $1
	`

	UpdateUserProfile = `
	UPDATE users SET first_name = $2, last_name = $3, date_of_birth = $4, bio = $5 WHERE id = $1
	`

	InsertFriendship = `
	INSERT INTO friendships (id, recipient_id, sender_id, status, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`

	GetFriendshipByPair = `
	SELECT * FROM friendships WHERE recipient_id = $1 AND sender_id = $2
	`

	GetFriendshipsByRecipient = `
	SELECT * FROM friendships WHERE recipient_id = $1
	`

	GetFriendshipsBySender = `
	SELECT * FROM friendships WHERE sender_id = $1
	`

	UpdateFriendshipStatus = `
	UPDATE friendships SET status = $2 WHERE id = $1
	`

	InsertMembership = `
	INSERT INTO memberships (id, community_id, user_id, status, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`

	GetMembershipByUserAndCommunity = `
	SELECT * FROM memberships WHERE user_id = $1 AND community_id = $2
	`

	GetMembershipsByCommunity = `
	SELECT * FROM memberships WHERE community_id = $1
	`

	GetMembershipsByUser = `
	SELECT * FROM memberships WHERE user_id = $1
	`

	UpdateMembershipStatus = `
	UPDATE memberships SET status = $2 WHERE id = $1
	`

	InsertAttendance = `
	INSERT INTO attendances (id, event_id, user_id, status, last_updated)
	VALUES ($1, $2, $3, $4, $5)
	`

	GetAttendanceByUserAndEvent = `
	SELECT * FROM attendances WHERE user_id = $1 AND event_id = $2
	`

	GetAttendancesByEvent = `
	SELECT * FROM attendances WHERE event_id = $1
	`

	GetAttendancesByUser = `
	SELECT * FROM attendances WHERE user_id = $1
	`

	UpdateAttendanceStatus = `
	UPDATE attendances SET status = $2, last_updated = $3 WHERE id = $1
	`

	InsertCommunity = `
	INSERT INTO communities (id, name, community_type, created_at)
	VALUES ($1, $2, $3, $4)
	`

	GetCommunityById = `
	SELECT * FROM communities WHERE id = $1
	`

	UpdateCommunityRow = `
	UPDATE communities SET name = $2, community_type = $3 WHERE id = $1
	`

	InsertEvent = `
	INSERT INTO events (id, name, description, creator_id, community_id, start_time, end_time, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	GetEventById = `
	SELECT * FROM events WHERE id = $1
	`

	GetEventsByCommunity = `
	SELECT * FROM events WHERE community_id = $1
	`

	UpdateEventRow = `
	UPDATE events SET name = $2, description = $3, start_time = $4, end_time = $5 WHERE id = $1
	`

	InsertNotification = `
	INSERT INTO notifications (id, notification_type, sender_id, receiver_id, subject_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	GetNotificationsByReceiver = `
	SELECT * FROM notifications WHERE receiver_id = $1 ORDER BY created_at ASC
	`
)

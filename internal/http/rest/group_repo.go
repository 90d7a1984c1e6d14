package rest

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/jackc/pgx/v5"
)

const groupColumns = `id, name, description, created_by, photo, created_at, updated_at`

func scanGroup(row pgx.Row) (model.Group, error) {
	var group model.Group
	err := row.Scan(
		&group.ID, &group.Name, &group.Description, &group.CreatedBy,
		&group.Photo, &group.CreatedAt, &group.UpdatedAt,
	)
	return group, err
}

// CreateGroupRepo inserts the group and the creator's admin membership
// in one transaction; a group never exists without its admin.
func (api *API) CreateGroupRepo(ctx context.Context, group model.Group) (model.Group, error) {
	var createdGroup model.Group

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		group.ID = uuid.New()
		group.CreatedAt = time.Now()
		group.UpdatedAt = time.Now()

		query := `
            INSERT INTO groups (id, name, description, created_by, photo, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING ` + groupColumns

		err := tx.QueryRow(ctx, query,
			group.ID, group.Name, group.Description, group.CreatedBy,
			group.Photo, group.CreatedAt, group.UpdatedAt,
		).Scan(
			&createdGroup.ID, &createdGroup.Name, &createdGroup.Description,
			&createdGroup.CreatedBy, &createdGroup.Photo,
			&createdGroup.CreatedAt, &createdGroup.UpdatedAt,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO group_users (id, id_group, id_user, permissions, created_at, updated_at)
            VALUES ($1, $2, $3, $4, NOW(), NOW())
        `, uuid.New(), createdGroup.ID, createdGroup.CreatedBy, values.PermissionAdmin)
		return err
	})

	if err != nil {
		log.Println("error creating new group or adding creator membership", err)
		return model.Group{}, err
	}

	return createdGroup, nil
}

func (api *API) GetGroupByIDRepo(ctx context.Context, groupID uuid.UUID) (model.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`
	return scanGroup(api.DB.QueryRow(ctx, query, groupID))
}

func (api *API) GroupNameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM groups WHERE name = $1)`
	err := api.DB.QueryRow(ctx, query, name).Scan(&exists)
	return exists, err
}

func (api *API) ListGroupsRepo(ctx context.Context) ([]model.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups`

	rows, err := api.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

func (api *API) UpdateGroupRepo(ctx context.Context, groupID uuid.UUID, req model.UpdateGroupRequest) (model.Group, error) {
	query := `
        UPDATE groups
        SET name = COALESCE($2, name),
            description = COALESCE($3, description),
            photo = COALESCE($4, photo),
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + groupColumns
	return scanGroup(api.DB.QueryRow(ctx, query, groupID, req.Name, req.Description, req.Photo))
}

func (api *API) DeleteGroupRepo(ctx context.Context, groupID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `DELETE FROM groups WHERE id = $1`, groupID)
	return err
}

// memberships

const membershipColumns = `id, id_group, id_user, permissions, created_at, updated_at`

func scanMembership(row pgx.Row) (model.GroupUser, error) {
	var membership model.GroupUser
	err := row.Scan(
		&membership.ID, &membership.GroupID, &membership.UserID,
		&membership.Permissions, &membership.CreatedAt, &membership.UpdatedAt,
	)
	return membership, err
}

func (api *API) GetMembershipRepo(ctx context.Context, groupID, userID uuid.UUID) (model.GroupUser, error) {
	query := `SELECT ` + membershipColumns + ` FROM group_users WHERE id_group = $1 AND id_user = $2`
	return scanMembership(api.DB.QueryRow(ctx, query, groupID, userID))
}

func (api *API) GetMembershipByIDRepo(ctx context.Context, membershipID uuid.UUID) (model.GroupUser, error) {
	query := `SELECT ` + membershipColumns + ` FROM group_users WHERE id = $1`
	return scanMembership(api.DB.QueryRow(ctx, query, membershipID))
}

// CreateMembershipRepo inserts a membership; the unique index on
// (id_group, id_user) makes double subscribes a no-op. The bool
// reports whether a new row landed.
func (api *API) CreateMembershipRepo(ctx context.Context, groupID, userID uuid.UUID, permission string) (model.GroupUser, bool, error) {
	query := `
        INSERT INTO group_users (id, id_group, id_user, permissions, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
        ON CONFLICT (id_group, id_user) DO NOTHING
    `
	tag, err := api.DB.Exec(ctx, query, uuid.New(), groupID, userID, permission)
	if err != nil {
		return model.GroupUser{}, false, err
	}

	membership, err := api.GetMembershipRepo(ctx, groupID, userID)
	if err != nil {
		return model.GroupUser{}, false, err
	}
	return membership, tag.RowsAffected() > 0, nil
}

func (api *API) UpdateMembershipRepo(ctx context.Context, groupID, userID uuid.UUID, permission string) (model.GroupUser, error) {
	query := `
        UPDATE group_users SET permissions = $3, updated_at = NOW()
        WHERE id_group = $1 AND id_user = $2
        RETURNING ` + membershipColumns
	return scanMembership(api.DB.QueryRow(ctx, query, groupID, userID, permission))
}

func (api *API) DeleteMembershipByIDRepo(ctx context.Context, membershipID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `DELETE FROM group_users WHERE id = $1`, membershipID)
	return err
}

func (api *API) DeleteMembershipRepo(ctx context.Context, groupID, userID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `DELETE FROM group_users WHERE id_group = $1 AND id_user = $2`, groupID, userID)
	return err
}

func (api *API) DeleteMembershipsByGroupRepo(ctx context.Context, groupID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `DELETE FROM group_users WHERE id_group = $1`, groupID)
	return err
}

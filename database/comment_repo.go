package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/errs"
	"github.com/sergiorueda9090/camilo/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// ForArticle returns an article's comments newest first. With onlyApproved
// the unmoderated ones are filtered out (the flag-based gate variant).
func (r *CommentRepo) ForArticle(articleID uuid.UUID, onlyApproved bool) ([]models.Comment, error) {
	q := r.db.Where("articulo_id = ?", articleID).Order("fecha_creacion DESC")
	if onlyApproved {
		q = q.Where("aprobado = ?", true)
	}
	var comments []models.Comment
	err := q.Find(&comments).Error
	return comments, err
}

// Add inserts a comment after validating the thread structure: a parent, if
// present, must exist and belong to the same article. A cycle is impossible
// because the parent always precedes the child.
func (r *CommentRepo) Add(comment *models.Comment) error {
	if comment.ParentID != nil {
		var parent models.Comment
		err := r.db.First(&parent, "id = ?", *comment.ParentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("parent comment")
		}
		if err != nil {
			return err
		}
		if parent.ArticleID != comment.ArticleID {
			return errs.ConstraintViolation("parent comment belongs to a different article")
		}
	}
	return r.db.Create(comment).Error
}

// SetApproved flips the moderation flag on a selected set, mirroring the
// admin bulk approve/reject actions. Returns how many rows changed.
func (r *CommentRepo) SetApproved(ids []uuid.UUID, approved bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.Model(&models.Comment{}).
		Where("id IN ?", ids).
		Update("aprobado", approved)
	return res.RowsAffected, res.Error
}

// AddHelpfulVote bumps votos_utiles by one in a single UPDATE.
func (r *CommentRepo) AddHelpfulVote(id uuid.UUID) (int64, error) {
	res := r.db.Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("votos_utiles", gorm.Expr("votos_utiles + 1"))
	return res.RowsAffected, res.Error
}

// Delete removes a comment and its replies.
func (r *CommentRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteReplies(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, "id = ?", id).Error
	})
}

func deleteReplies(tx *gorm.DB, parentID uuid.UUID) error {
	var children []models.Comment
	if err := tx.Select("id").Where("padre_id = ?", parentID).Find(&children).Error; err != nil {
		return err
	}
	for _, child := range children {
		if err := deleteReplies(tx, child.ID); err != nil {
			return err
		}
		if err := tx.Delete(&models.Comment{}, "id = ?", child.ID).Error; err != nil {
			return err
		}
	}
	return nil
}

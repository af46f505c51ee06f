package mysql

const createFavoritesSQL = `
CREATE TABLE IF NOT EXISTS venue_favorites (
  venue_id   BIGINT PRIMARY KEY,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`

const createMyReviewsSQL = `
CREATE TABLE IF NOT EXISTS venue_my_reviews (
  venue_id   BIGINT PRIMARY KEY,
  review_id  VARCHAR(64) NOT NULL,
  author     VARCHAR(255) NOT NULL,
  comment    TEXT NOT NULL,
  score      INT NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`

const upsertFavoriteSQL = `
INSERT INTO venue_favorites (venue_id)
VALUES (?)
ON DUPLICATE KEY UPDATE updated_at = CURRENT_TIMESTAMP
`

const deleteFavoriteSQL = `DELETE FROM venue_favorites WHERE venue_id = ?`

const clearFavoritesSQL = `DELETE FROM venue_favorites`

const upsertMyReviewSQL = `
INSERT INTO venue_my_reviews
  (venue_id, review_id, author, comment, score, created_at)
VALUES
  (?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))
ON DUPLICATE KEY UPDATE
  review_id  = VALUES(review_id),
  author     = VALUES(author),
  comment    = VALUES(comment),
  score      = VALUES(score),
  created_at = VALUES(created_at)
`

const deleteMyReviewSQL = `DELETE FROM venue_my_reviews WHERE venue_id = ?`

const selectFavoritesSQL = `SELECT venue_id FROM venue_favorites`

const selectMyReviewsSQL = `
SELECT venue_id, review_id, author, comment, score, created_at
FROM venue_my_reviews
`

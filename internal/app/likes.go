package app

// LikeNotice is the transient message shown after a like.
const LikeNotice = "Thanks for loving cats!"

// LikeCounter only ever counts up.
type LikeCounter struct {
	count int
}

func (l *LikeCounter) Like() int {
	l.count++
	return l.count
}

func (l *LikeCounter) Count() int { return l.count }

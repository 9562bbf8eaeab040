package app

import "purrfect-cats/internal/domain"

// Carousel owns the current image index.
//
// Ticks and manual navigation all go through move, so the last writer wins:
// a manual next/previous does not reset the auto-advance schedule.
type Carousel struct {
	images []string
	index  int
}

func NewCarousel(images []string) (*Carousel, error) {
	if len(images) == 0 {
		return nil, domain.ErrEmptyImageSet
	}
	return &Carousel{images: images}, nil
}

// Tick is one timer-driven advance.
func (c *Carousel) Tick() int { return c.move(1) }

func (c *Carousel) Next() int { return c.move(1) }

func (c *Carousel) Previous() int { return c.move(-1) }

func (c *Carousel) Index() int { return c.index }

func (c *Carousel) move(delta int) int {
	n := len(c.images)
	c.index = ((c.index+delta)%n + n) % n
	return c.index
}

func (c *Carousel) State() domain.CarouselState {
	return domain.CarouselState{
		Index: c.index,
		Count: len(c.images),
		Image: c.images[c.index],
	}
}

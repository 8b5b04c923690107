// Package game implements the shared trivia session: a read-only quiz
// catalog, a concurrency-safe player registry, and the scoring protocol
// that ties them together. It is transport-agnostic; the HTTP layer in
// the root package is one possible adapter.
package game

// Service is the façade the transport layer talks to. Each operation is
// a single atomic unit of work: it either fully succeeds or leaves the
// registry untouched.
type Service struct {
	catalog  *Catalog
	registry *Registry
	onChange func(Player)
}

func NewService(catalog *Catalog) *Service {
	return &Service{
		catalog:  catalog,
		registry: NewRegistry(),
	}
}

// OnChange registers a callback invoked after every successful
// registration or answer submission, outside any lock. Used by the
// scoreboard hub to push live updates. Must be set before the service
// starts taking requests.
func (s *Service) OnChange(fn func(Player)) {
	s.onChange = fn
}

// RegisterPlayer creates a player with score 0. Fails with
// ErrInvalidArgument for a blank name and ErrAlreadyExists for a
// duplicate one.
func (s *Service) RegisterPlayer(name string) (Player, error) {
	p, err := s.registry.Register(name)
	if err != nil {
		return Player{}, err
	}
	s.notify(p)
	return p, nil
}

// ListQuizzes returns every quiz in the catalog, including the correct
// option index, mirroring the original wire protocol. Adapters that face
// untrusted players should strip the answer key before responding.
func (s *Service) ListQuizzes() []Quiz {
	return s.catalog.ListAll()
}

// GetQuestion returns a single quiz by id.
func (s *Service) GetQuestion(quizID int) (Quiz, error) {
	return s.catalog.FindByID(quizID)
}

// SubmitAnswer scores one answer for one player. A correct answer
// increments the player's score by exactly 1; a wrong answer leaves it
// unchanged. The read-evaluate-write runs as one registry critical
// section, so concurrent submissions for the same player cannot lose
// updates. Returns the updated player and the quiz's correct option so
// callers can show right/wrong feedback. Fails with ErrNotFound, and no
// state changes, when the player or quiz is unknown.
func (s *Service) SubmitAnswer(playerName string, quizID, answer int) (Player, int, error) {
	quiz, err := s.catalog.FindByID(quizID)
	if err != nil {
		return Player{}, 0, err
	}

	result := Evaluate(quiz, answer)

	updated, err := s.registry.Update(playerName, func(p Player) Player {
		if result.Correct {
			p.Score++
		}
		return p
	})
	if err != nil {
		return Player{}, 0, err
	}

	s.notify(updated)
	return updated, quiz.CorrectOption, nil
}

// ListScores returns a snapshot of all players in registration order.
func (s *Service) ListScores() []Player {
	return s.registry.ListAll()
}

func (s *Service) notify(p Player) {
	if s.onChange != nil {
		s.onChange(p)
	}
}

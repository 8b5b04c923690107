package game

// Result is the outcome of evaluating a submitted answer.
type Result struct {
	Correct bool
}

// Evaluate compares a submitted answer index against the quiz's correct
// option. No range check is performed: an out-of-range index (0, 5, -1)
// never equals a valid correct option and simply evaluates as wrong.
// Callers wanting a distinct error for malformed indices must validate
// before calling.
func Evaluate(q Quiz, answer int) Result {
	return Result{Correct: answer == q.CorrectOption}
}

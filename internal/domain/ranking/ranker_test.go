package ranking_test

import (
	"context"
	"testing"

	model "github.com/RAloysia/course-recommendation-app/internal/domain/model"
	ranking "github.com/RAloysia/course-recommendation-app/internal/domain/ranking"
	vectorize "github.com/RAloysia/course-recommendation-app/internal/domain/vectorize"
	. "github.com/smartystreets/goconvey/convey"
)

// newRanker fits a vectorizer over the given courses and builds a ranker,
// mirroring the load-time flow of the service.
func newRanker(courses []model.Course, opts ...ranking.Option) *ranking.Ranker {
	corpus := make([]string, len(courses))
	for i, c := range courses {
		corpus[i] = c.CombinedFeatures()
	}
	v := vectorize.New()
	if err := v.Fit(corpus); err != nil {
		panic(err)
	}
	matrix, err := v.TransformAll(corpus)
	if err != nil {
		panic(err)
	}
	r, err := ranking.New(courses, matrix, v, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func sampleCourses() []model.Course {
	return []model.Course{
		{ID: 0, Title: "Intro to Python Programming", Skills: "python programming basics", Difficulty: model.DifficultyBeginner, Rating: 4.5},
		{ID: 1, Title: "Advanced Python for Data Science", Skills: "python data science pandas", Difficulty: model.DifficultyAdvanced, Rating: 4.8},
		{ID: 2, Title: "Cooking Basics", Skills: "cooking knife techniques", Difficulty: model.DifficultyBeginner, Rating: 4.0},
	}
}

func ptrDifficulty(d model.Difficulty) *model.Difficulty { return &d }
func ptrFloat(f float64) *float64                        { return &f }

func TestRecommend(t *testing.T) {
	Convey("Given a ranker over the sample catalog", t, func() {
		r := newRanker(sampleCourses())
		ctx := context.Background()

		Convey("When querying for python programming with topK=2", func() {
			recs, err := r.Recommend(ctx, model.Query{Text: "python programming", TopK: 2})

			Convey("Then the two python courses come back ranked", func() {
				So(err, ShouldBeNil)
				So(len(recs), ShouldEqual, 2)
				So(recs[0].Course.ID, ShouldBeIn, []int{0, 1})
				So(recs[1].Course.ID, ShouldBeIn, []int{0, 1})
				So(recs[0].Score, ShouldBeGreaterThanOrEqualTo, recs[1].Score)
				So(recs[0].Score, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When filtering python by Advanced difficulty", func() {
			recs, err := r.Recommend(ctx, model.Query{
				Text:       "python",
				Difficulty: ptrDifficulty(model.DifficultyAdvanced),
				TopK:       5,
			})

			Convey("Then only the advanced course is returned", func() {
				So(err, ShouldBeNil)
				So(len(recs), ShouldEqual, 1)
				So(recs[0].Course.ID, ShouldEqual, 1)
			})
		})

		Convey("When no candidate passes the filters", func() {
			recs, err := r.Recommend(ctx, model.Query{
				Text:      "nonexistent topic xyz",
				MinRating: ptrFloat(4.9),
				TopK:      5,
			})

			Convey("Then an empty sequence is returned, not an error", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldBeEmpty)
			})
		})

		Convey("When applying a minimum rating filter", func() {
			recs, err := r.Recommend(ctx, model.Query{
				Text:      "python basics cooking",
				MinRating: ptrFloat(4.4),
				TopK:      10,
			})

			Convey("Then every result satisfies the predicate", func() {
				So(err, ShouldBeNil)
				So(len(recs), ShouldEqual, 2)
				for _, rec := range recs {
					So(rec.Course.Rating, ShouldBeGreaterThanOrEqualTo, 4.4)
				}
			})
		})

		Convey("When issuing the same query twice", func() {
			q := model.Query{Text: "python data", TopK: 3}
			a, errA := r.Recommend(ctx, q)
			b, errB := r.Recommend(ctx, q)

			Convey("Then the output is identical", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(a, ShouldResemble, b)
			})
		})

		Convey("When topK truncates the candidate set", func() {
			recs, err := r.Recommend(ctx, model.Query{Text: "python basics cooking", TopK: 1})

			Convey("Then at most topK results come back", func() {
				So(err, ShouldBeNil)
				So(len(recs), ShouldEqual, 1)
			})
		})

		Convey("When the query omits topK", func() {
			recs, err := r.Recommend(ctx, model.Query{Text: "python basics cooking"})

			Convey("Then the configured default bound applies", func() {
				So(err, ShouldBeNil)
				So(len(recs), ShouldBeLessThanOrEqualTo, 5)
			})
		})
	})
}

func TestRecommendValidation(t *testing.T) {
	Convey("Given a ranker", t, func() {
		r := newRanker(sampleCourses())
		ctx := context.Background()

		Convey("When the query text is empty", func() {
			_, err := r.Recommend(ctx, model.Query{Text: "", TopK: 3})
			So(err, ShouldEqual, ranking.ErrInvalidQuery)
		})

		Convey("When the query text is whitespace only", func() {
			_, err := r.Recommend(ctx, model.Query{Text: "   \t ", TopK: 3})
			So(err, ShouldEqual, ranking.ErrInvalidQuery)
		})

		Convey("When min_rating is outside the valid range", func() {
			_, err := r.Recommend(ctx, model.Query{Text: "python", MinRating: ptrFloat(5.5)})
			So(err, ShouldWrap, ranking.ErrInvalidFilter)

			_, err = r.Recommend(ctx, model.Query{Text: "python", MinRating: ptrFloat(-0.1)})
			So(err, ShouldWrap, ranking.ErrInvalidFilter)
		})

		Convey("When the difficulty filter is unknown", func() {
			bad := model.Difficulty("Expert")
			_, err := r.Recommend(ctx, model.Query{Text: "python", Difficulty: &bad})
			So(err, ShouldWrap, ranking.ErrInvalidFilter)
		})

		Convey("When topK is negative", func() {
			_, err := r.Recommend(ctx, model.Query{Text: "python", TopK: -1})
			So(err, ShouldWrap, ranking.ErrInvalidFilter)
		})

		Convey("When topK is zero", func() {
			recs, err := r.Recommend(ctx, model.Query{Text: "python basics cooking"})

			Convey("Then the configured default bound applies", func() {
				So(err, ShouldBeNil)
				So(len(recs), ShouldBeLessThanOrEqualTo, 5)
				So(len(recs), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When boundary min_rating values are used", func() {
			_, err := r.Recommend(ctx, model.Query{Text: "python", MinRating: ptrFloat(0)})
			So(err, ShouldBeNil)
			_, err = r.Recommend(ctx, model.Query{Text: "python", MinRating: ptrFloat(5)})
			So(err, ShouldBeNil)
		})
	})
}

func TestRecommendTieBreaks(t *testing.T) {
	Convey("Given courses with identical feature text", t, func() {
		courses := []model.Course{
			{ID: 0, Title: "Go Basics", Skills: "go basics", Difficulty: model.DifficultyBeginner, Rating: 4.0},
			{ID: 1, Title: "Go Basics", Skills: "go basics", Difficulty: model.DifficultyBeginner, Rating: 4.7},
			{ID: 2, Title: "Go Basics", Skills: "go basics", Difficulty: model.DifficultyBeginner, Rating: 4.7},
		}
		r := newRanker(courses)

		Convey("When all scores tie", func() {
			recs, err := r.Recommend(context.Background(), model.Query{Text: "go basics", TopK: 3})

			Convey("Then rating breaks the tie, then catalog order", func() {
				So(err, ShouldBeNil)
				So(len(recs), ShouldEqual, 3)
				So(recs[0].Course.ID, ShouldEqual, 1) // 4.7, earlier than ID 2
				So(recs[1].Course.ID, ShouldEqual, 2)
				So(recs[2].Course.ID, ShouldEqual, 0)
			})
		})
	})
}

func TestRankerConstruction(t *testing.T) {
	Convey("Given mismatched inputs", t, func() {
		courses := sampleCourses()
		v := vectorize.New()
		So(v.Fit([]string{"python"}), ShouldBeNil)

		Convey("When the matrix size differs from the catalog", func() {
			_, err := ranking.New(courses, make([]vectorize.Vector, 1), v)
			So(err, ShouldWrap, ranking.ErrMatrixMismatch)
		})

		Convey("When the encoder is nil", func() {
			_, err := ranking.New(courses, make([]vectorize.Vector, len(courses)), nil)
			So(err, ShouldEqual, ranking.ErrNilEncoder)
		})
	})
}

func TestRecommendMinScore(t *testing.T) {
	Convey("Given a ranker with a minimum score threshold", t, func() {
		r := newRanker(sampleCourses(), ranking.WithMinScore(0.01))

		Convey("When the query shares no terms with a course", func() {
			recs, err := r.Recommend(context.Background(), model.Query{Text: "python", TopK: 10})

			Convey("Then zero-score candidates are excluded", func() {
				So(err, ShouldBeNil)
				for _, rec := range recs {
					So(rec.Score, ShouldBeGreaterThan, 0)
				}
			})
		})
	})
}

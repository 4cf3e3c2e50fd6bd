// Package mongorepo stores interviews and feedback as flat documents in
// MongoDB collections named after the tables of the SQL backend.
package mongorepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	InterviewsCollection = "interviews"
	FeedbackCollection   = "feedback"
)

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func ownerFilter(userID string) bson.D {
	return bson.D{{Key: "user_id", Value: userID}}
}

func availableFilter(userID string) bson.D {
	return bson.D{
		{Key: "finalized", Value: true},
		{Key: "user_id", Value: bson.D{{Key: "$ne", Value: userID}}},
	}
}

func pairFilter(interviewID, userID string) bson.D {
	return bson.D{
		{Key: "interview_id", Value: interviewID},
		{Key: "user_id", Value: userID},
	}
}

func newestFirst(field string, limit int) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: field, Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return opts
}

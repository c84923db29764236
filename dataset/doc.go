/*
Package dataset provides Matrix, the immutable table of numeric predictor
columns and target column from which regression trees are grown, along with
the seeded train/test splitting and fold assignment used to evaluate them.

Subpackages load matrices from CSV files, SQL databases and MongoDB
collections, or simulate them.
*/
package dataset

/*
Package geom fits generalized linear models for geometrically
distributed outcomes, taking values 1, 2, ..., using iterated weighted
least squares (IWLS).

The mean of the outcome is related to the linear predictor through
mu = exp(eta) + 1, with variance (mu - 1) * mu.  After the IWLS
iterations converge, the results value carries the parameter
estimates, their covariance matrix, the deviance, and the residuals,
leverages and Cook's distances used for model diagnostics.  Nothing in
this package performs I/O; see the diagplot package for plots.
*/
package geom

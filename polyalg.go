/*
Package polyalg is a library of dense univariate polynomials with real coefficients.
It provides arithmetic, long division, Euclidean GCD, calculus, composition, evaluation
in float64, complex128 and arbitrary precision, analytic roots up to degree two, and
Chebyshev approximation of real functions.
*/
package polyalg

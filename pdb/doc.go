/*
Package pdb reads the coordinate section of PDB formatted files into an
entity tree (see package entity): one tree of chains, residues and atoms per
MODEL.

Only HEADER, MODEL, ENDMDL, ATOM and HETATM records are interpreted.
Everything else in a PDB file is ignored. Water molecules are dropped, and
alternate locations are resolved to the highest occupancy conformer.

Residue names, atom names, chain identifiers and insertion codes are kept
exactly as they appear in the file (modulo surrounding whitespace), except
that a blank chain identifier is stored as "_".
*/
package pdb
